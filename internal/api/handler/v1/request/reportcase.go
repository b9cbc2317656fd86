package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/episurv/reportcase-api/internal/domain"
)

// ReportcaseBody carries the six mutable fields of a reportcase. The counters
// are independent; totalActive is not checked against confirmed minus deaths.
type ReportcaseBody struct {
	TotalConfirmed int    `json:"totalConfirmed"`
	TotalDeaths    int    `json:"totalDeaths"`
	TotalActive    int    `json:"totalActive"`
	DateInfo       string `json:"dateInfo"`
	DiseaseID      uint   `json:"diseaseId"`
	LocalizationID uint   `json:"localizationId"`
}

func (req *ReportcaseBody) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TotalConfirmed, validation.Min(0)),
		validation.Field(&req.TotalDeaths, validation.Min(0)),
		validation.Field(&req.TotalActive, validation.Min(0)),
		validation.Field(&req.DateInfo, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.DiseaseID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.LocalizationID, validation.Required, validation.Min(uint(1))),
	)
}

// ToDomain converts the body to a domain record. Validate must have accepted
// the body first; the date has already been proven well-formed.
func (req *ReportcaseBody) ToDomain() (domain.Reportcase, error) {
	date, err := domain.ParseDate(req.DateInfo)
	if err != nil {
		return domain.Reportcase{}, err
	}

	return domain.Reportcase{
		TotalConfirmed: req.TotalConfirmed,
		TotalDeaths:    req.TotalDeaths,
		TotalActive:    req.TotalActive,
		DateInfo:       date,
		DiseaseID:      req.DiseaseID,
		LocalizationID: req.LocalizationID,
	}, nil
}

type CreateReportcaseRequest struct {
	ReportcaseBody
}

type UpdateReportcaseRequest struct {
	ReportcaseBody
}
