package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDiseaseRequest struct {
	Name string `json:"name"`
}

func (req *CreateDiseaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateDiseaseRequest struct {
	Name string `json:"name"`
}

func (req *UpdateDiseaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
