package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GPA is stored as NUMERIC(3,2).
var (
	GPAMaxDigits     = 3
	GPADecimalPlaces = 2
)

// DecimalValidation checks a decimal against a fixed precision and scale.
type DecimalValidation struct {
	Value         decimal.Decimal
	MaxDigits     int
	DecimalPlaces int
}

// NewDecimalValidation creates a new decimal validation
func NewDecimalValidation(value decimal.Decimal) *DecimalValidation {
	return &DecimalValidation{Value: value}
}

// WithMaxDigits sets the total number of significant digits allowed
func (v *DecimalValidation) WithMaxDigits(n int) *DecimalValidation {
	v.MaxDigits = n
	return v
}

// WithDecimalPlaces sets the number of digits allowed after the point
func (v *DecimalValidation) WithDecimalPlaces(n int) *DecimalValidation {
	v.DecimalPlaces = n
	return v
}

// Validate returns an empty string when the value fits, otherwise a user-facing message.
func (v *DecimalValidation) Validate() string {
	// Trailing zeros do not count against the scale: 3.50 and 3.5 are the same value.
	s := v.Value.Abs().String()
	whole, frac := s, ""
	for i, r := range s {
		if r == '.' {
			whole, frac = s[:i], s[i+1:]
			break
		}
	}
	if whole == "0" {
		whole = ""
	}

	if v.MaxDigits > 0 && len(whole)+len(frac) > v.MaxDigits {
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", v.MaxDigits)
	}
	if len(frac) > v.DecimalPlaces {
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", v.DecimalPlaces)
	}
	if v.MaxDigits > 0 && len(whole) > v.MaxDigits-v.DecimalPlaces {
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", v.MaxDigits-v.DecimalPlaces)
	}
	return ""
}

// ValidateGPA applies the GPA precision rules.
func ValidateGPA(value decimal.Decimal) string {
	return NewDecimalValidation(value).
		WithMaxDigits(GPAMaxDigits).
		WithDecimalPlaces(GPADecimalPlaces).
		Validate()
}
