package service

import (
	"regexp"
	"strings"

	"github.com/folio-site/folio-backend/internal/contact/domain"
)

// Validation messages double as stable error identifiers for the frontend.
const (
	ErrNameRequired    = "Name is required"
	ErrEmailRequired   = "Valid email is required"
	ErrMessageRequired = "Message is required"
)

// Deliberately loose: local@domain.tld with no whitespace. Anything stricter
// rejects real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a submission and returns the violated rules in a fixed
// order: name, email, message. An empty slice means the submission may
// proceed to the mail relay.
func Validate(s domain.Submission) []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !emailPattern.MatchString(s.Email) {
		errs = append(errs, ErrEmailRequired)
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, ErrMessageRequired)
	}
	return errs
}
