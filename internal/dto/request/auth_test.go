package request

import (
	"net/url"
	"testing"
)

func TestRegisterFormValid(t *testing.T) {
	form := NewRegisterForm(url.Values{
		"email":            {"viewer@example.com"},
		"password":         {"letmein"},
		"confirm_password": {"letmein"},
	})

	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRegisterFormFieldErrors(t *testing.T) {
	form := NewRegisterForm(url.Values{
		"email":            {"not-an-email"},
		"password":         {"abc"},
		"confirm_password": {"abcd"},
	})

	errs := form.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected three field errors, got %v", errs)
	}

	if _, ok := errs["Email"]; !ok {
		t.Fatalf("expected an email format error, got %v", errs)
	}
	if _, ok := errs["Password"]; !ok {
		t.Fatalf("expected a password length error, got %v", errs)
	}
	if _, ok := errs["ConfirmPassword"]; !ok {
		t.Fatalf("expected a confirmation mismatch error, got %v", errs)
	}
}

func TestRegisterFormFieldsValidateIndependently(t *testing.T) {
	// A broken email must not stop password validation
	form := NewRegisterForm(url.Values{
		"email":            {""},
		"password":         {"this-password-is-way-too-long-to-pass"},
		"confirm_password": {"this-password-is-way-too-long-to-pass"},
	})

	errs := form.Validate()
	if _, ok := errs["Email"]; !ok {
		t.Fatalf("expected a required email error, got %v", errs)
	}
	if _, ok := errs["Password"]; !ok {
		t.Fatalf("expected a max length password error, got %v", errs)
	}
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	form := NewLoginForm(url.Values{})

	errs := form.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected two field errors, got %v", errs)
	}

	form = NewLoginForm(url.Values{
		"email":    {"viewer@example.com"},
		"password": {"x"},
	})

	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
