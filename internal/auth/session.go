package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenMaxAge is how long a session token remains valid.
const DefaultTokenMaxAge = time.Hour

// SessionManager issues and verifies signed, self-contained session tokens.
// Tokens bind a user ID to an issuance timestamp and are validated against a
// maximum age at verification time, so the server keeps no per-token state.
// The trade-off is deliberate: logout only clears the client cookie, and a
// stolen token stays valid until it ages out. Rotating the secret invalidates
// every outstanding token.
type SessionManager struct {
	secretKey []byte
	maxAge    time.Duration
}

// sessionClaims is the signed token payload. Only the issued-at timestamp is
// embedded; expiry is the verifier's max-age check, not an exp claim.
type sessionClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewSessionManager creates a session manager signing with the given secret.
// maxAge is the default validity window applied by Verify.
func NewSessionManager(secretKey string, maxAge time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		maxAge:    maxAge,
	}
}

// CreateToken issues a URL-safe signed token asserting that userID was
// authenticated now.
func (m *SessionManager) CreateToken(userID int64) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token against the manager's default max age.
func (m *SessionManager) Verify(token string) (int64, bool) {
	return m.VerifyWithin(token, m.maxAge)
}

// VerifyWithin validates the signature and payload of token and returns the
// embedded user ID. It reports false, never an error, for a bad signature, an
// unparseable payload, or a token older than maxAge. A token is still valid
// at exactly maxAge after issuance (second precision).
func (m *SessionManager) VerifyWithin(token string, maxAge time.Duration) (int64, bool) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&sessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, false
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return 0, false
	}
	if claims.UserID <= 0 || claims.IssuedAt == nil {
		return 0, false
	}

	age := time.Now().Unix() - claims.IssuedAt.Unix()
	if age > int64(maxAge.Seconds()) {
		return 0, false
	}

	return claims.UserID, true
}
