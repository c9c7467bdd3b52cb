package wizard

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	validate := validateNotEmpty("project name")

	if err := validate("FooBar"); err != nil {
		t.Errorf("validate(\"FooBar\") = %v, want nil", err)
	}
	if err := validate(""); err == nil {
		t.Error("validate(\"\") = nil, want error")
	}
	if err := validate("   "); err == nil {
		t.Error("validate(whitespace) = nil, want error")
	}
}
