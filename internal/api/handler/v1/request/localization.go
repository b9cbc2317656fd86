package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateLocalizationRequest struct {
	Country   string `json:"country"`
	Continent string `json:"continent"`
}

func (req *CreateLocalizationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Country, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Continent, validation.Required, validation.Length(1, 50)),
	)
}

type UpdateLocalizationRequest struct {
	Country   string `json:"country"`
	Continent string `json:"continent"`
}

func (req *UpdateLocalizationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Country, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Continent, validation.Required, validation.Length(1, 50)),
	)
}
