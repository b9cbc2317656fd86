package response

import "github.com/episurv/reportcase-api/internal/domain"

type ReportcaseListItem struct {
	Id             uint        `json:"Id"`
	TotalConfirmed int         `json:"TotalConfirmed"`
	TotalDeaths    int         `json:"TotalDeaths"`
	TotalActive    int         `json:"TotalActive"`
	DateInfo       domain.Date `json:"DateInfo"`
	DiseaseId      uint        `json:"DiseaseId"`
	LocalizationId uint        `json:"LocalizationId"`
}

func NewReportcaseList(reportcases []domain.Reportcase) []ReportcaseListItem {
	items := make([]ReportcaseListItem, len(reportcases))
	for i, rc := range reportcases {
		items[i] = ReportcaseListItem{
			Id:             rc.ID,
			TotalConfirmed: rc.TotalConfirmed,
			TotalDeaths:    rc.TotalDeaths,
			TotalActive:    rc.TotalActive,
			DateInfo:       rc.DateInfo,
			DiseaseId:      rc.DiseaseID,
			LocalizationId: rc.LocalizationID,
		}
	}

	return items
}
