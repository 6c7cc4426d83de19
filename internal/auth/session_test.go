package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueAt signs a token for userID with an arbitrary issued-at timestamp,
// bypassing CreateToken so expiry tests don't depend on the wall clock.
func issueAt(t *testing.T, secret string, userID int64, issuedAt time.Time) string {
	t.Helper()

	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", DefaultTokenMaxAge)

	token, err := m.CreateToken(42)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, ok := m.Verify(token)
	if !ok {
		t.Fatal("expected freshly issued token to verify")
	}
	if userID != 42 {
		t.Errorf("user ID: expected 42, got %d", userID)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	m := NewSessionManager("test-secret", DefaultTokenMaxAge)

	token, err := m.CreateToken(7)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	if _, ok := m.Verify(string(tampered)); ok {
		t.Error("expected tampered token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSessionManager("secret-k1", DefaultTokenMaxAge)
	verifier := NewSessionManager("secret-k2", DefaultTokenMaxAge)

	token, err := signer.CreateToken(7)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	if _, ok := verifier.Verify(token); ok {
		t.Error("expected token signed with K1 to fail under K2")
	}
	if _, ok := signer.Verify(token); !ok {
		t.Error("expected token to verify under its own secret")
	}
}

func TestVerifyMaxAge(t *testing.T) {
	m := NewSessionManager("test-secret", DefaultTokenMaxAge)

	t.Run("expired token rejected", func(t *testing.T) {
		token := issueAt(t, "test-secret", 9, time.Now().Add(-2*time.Hour))
		if _, ok := m.Verify(token); ok {
			t.Error("expected two-hour-old token to fail the default max age")
		}
		if _, ok := m.VerifyWithin(token, 3*time.Hour); !ok {
			t.Error("expected same token to pass a three-hour max age")
		}
	})

	t.Run("max age zero bounds at issuance instant", func(t *testing.T) {
		fresh := issueAt(t, "test-secret", 9, time.Now())
		if _, ok := m.VerifyWithin(fresh, 0); !ok {
			t.Error("expected token to be valid at the issuance instant")
		}

		stale := issueAt(t, "test-secret", 9, time.Now().Add(-time.Second))
		if _, ok := m.VerifyWithin(stale, 0); ok {
			t.Error("expected one-second-old token to be invalid with max age zero")
		}
	})
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", DefaultTokenMaxAge)

	for _, token := range []string{"", "not.a.token", "a.b", "%%%"} {
		if _, ok := m.Verify(token); ok {
			t.Errorf("expected %q to be rejected", token)
		}
	}
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	m := NewSessionManager("test-secret", DefaultTokenMaxAge)

	// No issued-at timestamp.
	noIat, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{UserID: 5}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, ok := m.Verify(noIat); ok {
		t.Error("expected token without issued-at to be rejected")
	}

	// No user ID.
	noUser := issueAt(t, "test-secret", 0, time.Now())
	if _, ok := m.Verify(noUser); ok {
		t.Error("expected token without user ID to be rejected")
	}
}
