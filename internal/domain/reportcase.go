package domain

import "time"

// Reportcase is one day's counters for a disease in a localization.
// UserID is the user who reported it; only that user may update the record.
type Reportcase struct {
	ID             uint      `json:"id"`
	TotalConfirmed int       `json:"totalConfirmed"`
	TotalDeaths    int       `json:"totalDeaths"`
	TotalActive    int       `json:"totalActive"`
	DateInfo       Date      `json:"dateInfo"`
	DiseaseID      uint      `json:"diseaseId"`
	LocalizationID uint      `json:"localizationId"`
	UserID         uint      `json:"userId"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
