package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateGPA(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{in: "3.5"},
		{in: "3.50"},
		{in: "4"},
		{in: "0.05"},
		{in: "-1.25"},
		{in: "3.125", wantErr: "digits in total"},
		{in: "12.5", wantErr: "before the decimal point"},
		{in: "100", wantErr: "before the decimal point"},
		{in: "1000", wantErr: "digits in total"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := ValidateGPA(decimal.RequireFromString(tc.in))
			if tc.wantErr == "" {
				if got != "" {
					t.Fatalf("ValidateGPA(%s) = %q, want ok", tc.in, got)
				}
				return
			}
			if !strings.Contains(got, tc.wantErr) {
				t.Fatalf("ValidateGPA(%s) = %q, want message containing %q", tc.in, got, tc.wantErr)
			}
		})
	}
}

func TestDecimalValidationScale(t *testing.T) {
	got := NewDecimalValidation(decimal.RequireFromString("1.234")).
		WithMaxDigits(6).
		WithDecimalPlaces(2).
		Validate()
	if !strings.Contains(got, "2 decimal places") {
		t.Fatalf("Validate = %q", got)
	}
}
