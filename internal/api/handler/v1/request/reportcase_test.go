package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReportcaseBody() ReportcaseBody {
	return ReportcaseBody{
		TotalConfirmed: 1500,
		TotalDeaths:    30,
		TotalActive:    200,
		DateInfo:       "2021-03-15",
		DiseaseID:      1,
		LocalizationID: 12,
	}
}

func TestReportcaseBody_Validate(t *testing.T) {
	body := validReportcaseBody()

	assert.NoError(t, body.Validate())
}

func TestReportcaseBody_Validate_ZeroCounters(t *testing.T) {
	body := validReportcaseBody()
	body.TotalConfirmed = 0
	body.TotalDeaths = 0
	body.TotalActive = 0

	assert.NoError(t, body.Validate())
}

func TestReportcaseBody_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body *ReportcaseBody)
	}{
		{"negative confirmed", func(body *ReportcaseBody) { body.TotalConfirmed = -1 }},
		{"negative deaths", func(body *ReportcaseBody) { body.TotalDeaths = -5 }},
		{"negative active", func(body *ReportcaseBody) { body.TotalActive = -3 }},
		{"missing date", func(body *ReportcaseBody) { body.DateInfo = "" }},
		{"malformed date", func(body *ReportcaseBody) { body.DateInfo = "15/03/2021" }},
		{"missing disease id", func(body *ReportcaseBody) { body.DiseaseID = 0 }},
		{"missing localization id", func(body *ReportcaseBody) { body.LocalizationID = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := validReportcaseBody()
			tc.mutate(&body)

			assert.Error(t, body.Validate())
		})
	}
}

func TestReportcaseBody_ToDomain(t *testing.T) {
	body := validReportcaseBody()

	reportcase, err := body.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, 1500, reportcase.TotalConfirmed)
	assert.Equal(t, 30, reportcase.TotalDeaths)
	assert.Equal(t, 200, reportcase.TotalActive)
	assert.Equal(t, "2021-03-15", reportcase.DateInfo.String())
	assert.Equal(t, uint(1), reportcase.DiseaseID)
	assert.Equal(t, uint(12), reportcase.LocalizationID)
}
