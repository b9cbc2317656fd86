package response

import "github.com/episurv/reportcase-api/internal/domain"

type LocalizationListItem struct {
	Id        uint   `json:"Id"`
	Country   string `json:"Country"`
	Continent string `json:"Continent"`
}

func NewLocalizationList(localizations []domain.Localization) []LocalizationListItem {
	items := make([]LocalizationListItem, len(localizations))
	for i, l := range localizations {
		items[i] = LocalizationListItem{
			Id:        l.ID,
			Country:   l.Country,
			Continent: l.Continent,
		}
	}

	return items
}
