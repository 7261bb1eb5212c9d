package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9+\-\s()]{6,}$`)
)

// Field is one input to validate. Label is the user-facing (Polish) name,
// Kind selects the format check applied after the required pass.
type Field struct {
	Label string
	Value string
	Kind  FieldKind
}

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldEmail
	FieldPhone
)

// ValidateFields runs the form validation gate: first a required pass that
// collects every empty field, then — only if nothing was missing — a format
// pass over email/phone fields. The result is a single consolidated message
// or "" when the form is clean.
func ValidateFields(fields []Field) string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Label)
		}
	}
	if len(missing) > 0 {
		return "Brakujace pola: " + strings.Join(missing, ", ")
	}

	var invalid []string
	for _, f := range fields {
		switch f.Kind {
		case FieldEmail:
			if !emailRegex.MatchString(strings.TrimSpace(f.Value)) {
				invalid = append(invalid, f.Label)
			}
		case FieldPhone:
			if !phoneRegex.MatchString(strings.TrimSpace(f.Value)) {
				invalid = append(invalid, f.Label)
			}
		}
	}
	if len(invalid) > 0 {
		return "Nieprawidlowy format: " + strings.Join(invalid, ", ")
	}

	return ""
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}
