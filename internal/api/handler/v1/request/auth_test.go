package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Email:           "jane@example.com",
		Password:        "secret1234",
		ConfirmPassword: "secret1234",
		Name:            "Jane",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	req := validSignupRequest()

	assert.NoError(t, req.Validate())
}

func TestSignupRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *SignupRequest)
	}{
		{"missing email", func(req *SignupRequest) { req.Email = "" }},
		{"bad email", func(req *SignupRequest) { req.Email = "not-an-email" }},
		{"missing name", func(req *SignupRequest) { req.Name = "" }},
		{"short password", func(req *SignupRequest) {
			req.Password = "ab1"
			req.ConfirmPassword = "ab1"
		}},
		{"password without digit", func(req *SignupRequest) {
			req.Password = "onlyletters"
			req.ConfirmPassword = "onlyletters"
		}},
		{"password without letter", func(req *SignupRequest) {
			req.Password = "1234567890"
			req.ConfirmPassword = "1234567890"
		}},
		{"confirm mismatch", func(req *SignupRequest) { req.ConfirmPassword = "different1" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignupRequest()
			tc.mutate(&req)

			assert.Error(t, req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{
		Email:    "jane@example.com",
		Password: "secret1234",
	}

	assert.NoError(t, req.Validate())
}

func TestLoginRequest_Validate_Abilities(t *testing.T) {
	req := LoginRequest{
		Email:     "jane@example.com",
		Password:  "secret1234",
		Abilities: []string{"disease:view", "reportcase:create"},
	}

	assert.NoError(t, req.Validate())
}

func TestLoginRequest_Validate_UnknownAbility(t *testing.T) {
	req := LoginRequest{
		Email:     "jane@example.com",
		Password:  "secret1234",
		Abilities: []string{"disease:view", "galaxy:conquer"},
	}

	assert.Error(t, req.Validate())
}
