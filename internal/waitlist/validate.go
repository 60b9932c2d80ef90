package waitlist

import (
	"fmt"
	"regexp"
)

// emailPattern is a syntactic check only: local part, "@", domain, ".", tld
// fragment, none of which may contain whitespace or "@". Whitespace is the
// ECMAScript set (ASCII whitespace, \v, Unicode separators and BOM) so the
// browser form and the controller accept the same inputs.
var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

const notSpaceOrAt = `[^\s\p{Z}\x{0B}\x{FEFF}@]`

// ValidationError reports an email rejected before any I/O took place.
type ValidationError struct {
	Email string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid email address %q", e.Email)
}

// IsValidEmail reports whether s looks like an email address. The input is
// not trimmed.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateEmail returns a *ValidationError when s is not a valid email.
func ValidateEmail(s string) error {
	if !IsValidEmail(s) {
		return &ValidationError{Email: s}
	}
	return nil
}
