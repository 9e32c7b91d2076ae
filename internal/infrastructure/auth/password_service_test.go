package auth

import "testing"

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "password" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Verify(hash, "password") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "wrong-password") {
		t.Error("expected wrong password to fail verification")
	}
}
