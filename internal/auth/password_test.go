package auth

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPassword(hash, "correct-horse") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-horse") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("abc12"); err == nil {
		t.Fatal("expected error for a short password")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Error("expected garbage hash to fail verification")
	}
}
