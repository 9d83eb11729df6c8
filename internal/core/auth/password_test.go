package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if digest == "secret123" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !CheckPassword("secret123", digest) {
		t.Fatalf("expected digest to verify against its own plaintext")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext must differ (randomized salt)")
	}
	if !CheckPassword("secret123", first) || !CheckPassword("secret123", second) {
		t.Fatalf("both digests must verify")
	}
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if CheckPassword("battery-staple", digest) {
		t.Fatalf("expected mismatch for a different plaintext")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$10$tooshort"} {
		if CheckPassword("anything", digest) {
			t.Fatalf("malformed digest %q must not verify", digest)
		}
	}
}
