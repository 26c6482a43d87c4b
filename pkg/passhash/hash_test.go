package passhash

import (
	"errors"
	"testing"
)

func TestHashVerify(t *testing.T) {
	encoded, err := HashWithIters("2026", 1000)
	if err != nil {
		t.Fatalf("HashWithIters() error = %v", err)
	}

	ok, err := Verify("2026", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v", ok, err)
	}
	ok, err = Verify("2025", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v", ok, err)
	}

	again, _ := HashWithIters("2026", 1000)
	if again == encoded {
		t.Fatal("hashes of the same secret must differ by salt")
	}
}

func TestVerifyMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"bcrypt$10$abc",
		"pbkdf2_sha256$x$c2FsdA$a2V5",
		"pbkdf2_sha256$10$$a2V5",
		"pbkdf2_sha256$10$c2FsdA",
	} {
		if _, err := Verify("2026", encoded); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Verify(%q) error = %v, want %v", encoded, err, ErrMalformedHash)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	encoded, _ := Hash("2026")
	for b.Loop() {
		_, _ = Verify("2026", encoded)
	}
}
