package theme

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

type validator struct {
	errs *multierror.Error
}

func (v *validator) add(field string, value any, err error) {
	log.Error().
		Str("config", field).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
	v.errs = multierror.Append(v.errs, err)
}

func (v *validator) ok(field string, value any) {
	log.Debug().
		Str("config", field).
		Interface("value", value).
		Msg("config set")
}

func (v *validator) invalid(field string, value any, reason string) {
	v.add(field, value, &ValidationError{Field: field, Value: value, Reason: reason})
}

func (v *validator) requireString(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.invalid(field, value, "is required")
		return false
	}
	v.ok(field, value)
	return true
}

func (v *validator) requireURL(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.invalid(field, value, "is required")
		return false
	}
	if err := checkAbsoluteURL(value); err != nil {
		v.invalid(field, value, err.Error())
		return false
	}
	v.ok(field, value)
	return true
}

func (v *validator) requireRange(field string, value, min, max int) bool {
	if value < min || value > max {
		v.invalid(field, value, fmt.Sprintf("must be between %d and %d", min, max))
		return false
	}
	v.ok(field, value)
	return true
}

func (v *validator) requireMin(field string, value, min int) bool {
	if value < min {
		v.invalid(field, value, fmt.Sprintf("must be at least %d", min))
		return false
	}
	v.ok(field, value)
	return true
}

func (v *validator) requireOneOf(field, value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			v.ok(field, value)
			return true
		}
	}
	v.invalid(field, value, fmt.Sprintf("must be one of %v", allowed))
	return false
}

// requirePlaceholder checks that tmpl contains placeholder exactly once.
func (v *validator) requirePlaceholder(field, tmpl, placeholder string) bool {
	if strings.Count(tmpl, placeholder) != 1 {
		v.add(field, tmpl, &TemplateError{Field: field, Template: tmpl, Placeholder: placeholder})
		return false
	}
	v.ok(field, tmpl)
	return true
}

func (v *validator) err() error {
	if v.errs == nil {
		return nil
	}
	v.errs.ErrorFormat = formatErrors
	return v.errs.ErrorOrNil()
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("is not a valid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}
