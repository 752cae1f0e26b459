package validation_test

import (
	"testing"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/validation"
)

func TestPassword(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Str0ng!pass", true},
		{"too short", "S1!a", false},
		{"no uppercase", "str0ng!pass", false},
		{"no lowercase", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no symbol", "Str0ngpass", false},
		{"symbol outside fixed set", "Str0ng pass", false},
		{"all classes at minimum length", "Aa1!aaaa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Password(tt.password)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.password, err)
			}
			if !tt.valid {
				if err == nil {
					t.Errorf("Expected %q to be rejected", tt.password)
				} else if !errs.IsValidation(err) {
					t.Errorf("Expected a validation error, got %v", err)
				}
			}
		})
	}
}

func TestStructRequiredFields(t *testing.T) {
	v := validation.New()

	req := &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
		Country:  "NL",
		// firstName and lastName missing
	}

	err := v.Struct(req)
	if err == nil {
		t.Fatal("Expected validation error for missing firstName")
	}
	if !errs.IsValidation(err) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}

func TestStructEmailFormat(t *testing.T) {
	v := validation.New()

	req := &models.RegisterRequest{
		Username:  "alice",
		Email:     "not-an-email",
		Password:  "Str0ng!pass",
		Country:   "NL",
		FirstName: "Alice",
		LastName:  "Jansen",
	}

	if err := v.Struct(req); err == nil {
		t.Error("Expected validation error for malformed email")
	}
}

func TestStructValidRequest(t *testing.T) {
	v := validation.New()

	req := &models.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "Str0ng!pass",
		Country:   "NL",
		FirstName: "Alice",
		LastName:  "Jansen",
	}

	if err := v.Struct(req); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}
