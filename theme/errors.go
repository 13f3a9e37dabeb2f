package theme

import (
	"fmt"
	"strings"
)

// ValidationError reports a settings field that is missing, malformed or
// out of range.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, fmt.Sprint(e.Value))
}

// TemplateError reports a format template that lacks its substitution
// placeholder or has more than one.
type TemplateError struct {
	Field       string
	Template    string
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: template %q must contain exactly one %s placeholder", e.Field, e.Template, e.Placeholder)
}

func formatErrors(errs []error) string {
	var sb strings.Builder
	sb.WriteString("theme configuration validation failed:\n")
	for _, err := range errs {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}
