package util

import "testing"

func TestDigestHex(t *testing.T) {
	key := "SEED|MICRO|notion,slack"
	got := DigestHex(key)
	if got != DigestHex(key) {
		t.Fatalf("expected stable digest, got %s", got)
	}
	if got == DigestHex(key+"!") {
		t.Fatalf("different inputs produced the same digest")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("digest contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
