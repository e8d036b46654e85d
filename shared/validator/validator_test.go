package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"booking-api/shared/failure"
	"booking-api/shared/validator"
)

type bookingRequest struct {
	Name    string `validate:"required,max=100"                    json:"name"`
	Email   string `validate:"required,email"                      json:"email"`
	Meeting string `validate:"required,oneof=VideoCallA VideoCallB" json:"meeting"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingRequest{
				Name:    "Ana",
				Email:   "ana@example.com",
				Meeting: "VideoCallA",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingRequest{
				Email:   "ana@example.com",
				Meeting: "VideoCallA",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &bookingRequest{
				Name:    "Ana",
				Email:   "not-an-email",
				Meeting: "VideoCallA",
			},
			expectError: true,
		},
		{
			name: "unknown meeting type",
			data: &bookingRequest{
				Name:    "Ana",
				Email:   "ana@example.com",
				Meeting: "Telepathy",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	body := `{"name":"Ana","email":"ana@example.com","meeting":"VideoCallB"}`

	req := bookingRequest{}
	if err := validator.Validate(strings.NewReader(body), &req); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if req.Name != "Ana" {
		t.Errorf("expected Name to be 'Ana', got %s", req.Name)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	req := bookingRequest{}
	err := validator.Validate(strings.NewReader(`{"name":`), &req)

	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	if code := failure.GetCode(err); code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
	}
}

func TestValidate_InvalidBody(t *testing.T) {
	req := bookingRequest{}
	err := validator.Validate(strings.NewReader(`{"name":"Ana"}`), &req)

	if err == nil {
		t.Fatal("expected validation error for missing fields")
	}

	if code := failure.GetCode(err); code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("ana@example.com", "required,email"); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var")
	}
}
