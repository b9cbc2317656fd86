package response

import "github.com/episurv/reportcase-api/internal/domain"

// DiseaseListItem is the projection returned by the list endpoint.
type DiseaseListItem struct {
	Id   uint   `json:"Id"`
	Name string `json:"Name"`
}

func NewDiseaseList(diseases []domain.Disease) []DiseaseListItem {
	items := make([]DiseaseListItem, len(diseases))
	for i, d := range diseases {
		items[i] = DiseaseListItem{
			Id:   d.ID,
			Name: d.Name,
		}
	}

	return items
}
