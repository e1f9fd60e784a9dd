package borrower

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Identity carries the borrower fields one application snapshots. There is
// no global borrower account: the same person applying to two lenders is two
// application records sharing a fingerprint.
type Identity struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth time.Time
}

// Fingerprint returns a stable hex sha256 over the normalized identity
// fields, used to recognize the same person across lenders.
//
// Matching rule: case-insensitive equality on first name, last name and
// email, one rule for every code path. Two people only collide when they
// share all three fields, i.e. family members sharing a surname must also
// share a mailbox to over-match; a borrower who changes email between
// applications will under-match. Both trade-offs are accepted.
func Fingerprint(firstName, lastName, email string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	sum := sha256.Sum256([]byte(norm(firstName) + "|" + norm(lastName) + "|" + norm(email)))
	return hex.EncodeToString(sum[:])
}

func (i Identity) Fingerprint() string {
	return Fingerprint(i.FirstName, i.LastName, i.Email)
}

func (i Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}
