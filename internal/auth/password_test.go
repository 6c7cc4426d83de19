package auth

import "testing"

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if digest == "" {
		t.Fatal("expected non-empty digest")
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest must not equal plaintext")
	}

	// Fresh salt per call: same input, different digests.
	second, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if digest == second {
		t.Error("expected different digests for repeated hashing")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword("s3cret-password", digest) {
		t.Error("expected correct password to verify")
	}
	if CheckPassword("wrong-password", digest) {
		t.Error("expected wrong password to fail")
	}
	if CheckPassword("s3cret-password", "not-a-bcrypt-digest") {
		t.Error("expected malformed digest to fail, not panic or error")
	}
	if CheckPassword("s3cret-password", "") {
		t.Error("expected empty digest to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := ValidatePassword("exactly8!"); err != nil {
		t.Errorf("expected 9-char password to pass, got %v", err)
	}
}
