package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Grade values accepted by the enrollment/grade store
	GradePattern = `^(A|A-|B\+|B|B-|C\+|C|C-|D\+|D|E|F)$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Grade *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Grade: regexp.MustCompile(GradePattern),
}

// IsValidEmail reports whether value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(value)))
}

// IsValidGrade reports whether value is an accepted letter grade.
func IsValidGrade(value string) bool {
	return CompiledPatterns.Grade.MatchString(strings.TrimSpace(value))
}

// IsValidName reports whether value fits the name length rules.
func IsValidName(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
