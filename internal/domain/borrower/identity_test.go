package borrower

import (
	"regexp"
	"testing"
)

var reHex64 = regexp.MustCompile(`^[a-f0-9]{64}$`)

func TestFingerprint_StableAndHex(t *testing.T) {
	fp := Fingerprint("Maria", "Santos", "maria@example.com")
	if !reHex64.MatchString(fp) {
		t.Fatalf("fingerprint not 64-char hex: %q", fp)
	}
	if fp != Fingerprint("Maria", "Santos", "maria@example.com") {
		t.Fatal("fingerprint not stable across calls")
	}
}

func TestFingerprint_CaseAndSpaceInsensitive(t *testing.T) {
	base := Fingerprint("Maria", "Santos", "maria@example.com")

	same := []struct{ first, last, email string }{
		{"maria", "santos", "maria@example.com"},
		{"MARIA", "SANTOS", "MARIA@EXAMPLE.COM"},
		{"  Maria ", "Santos  ", " maria@example.com "},
	}
	for _, s := range same {
		if got := Fingerprint(s.first, s.last, s.email); got != base {
			t.Errorf("Fingerprint(%q,%q,%q) differs from base", s.first, s.last, s.email)
		}
	}
}

func TestFingerprint_DistinguishesFields(t *testing.T) {
	base := Fingerprint("Maria", "Santos", "maria@example.com")

	// Sharing a surname (or even a full name) is not enough to match;
	// all three fields must agree.
	diff := []struct{ first, last, email string }{
		{"Ana", "Santos", "maria@example.com"},
		{"Maria", "Cruz", "maria@example.com"},
		{"Maria", "Santos", "maria.s@example.com"},
		// field-boundary check: moving characters across the separator
		{"Marias", "antos", "maria@example.com"},
	}
	for _, d := range diff {
		if got := Fingerprint(d.first, d.last, d.email); got == base {
			t.Errorf("Fingerprint(%q,%q,%q) should differ from base", d.first, d.last, d.email)
		}
	}
}
