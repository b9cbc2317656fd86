package domain

import "time"

type Localization struct {
	ID        uint      `json:"id"`
	Country   string    `json:"country"`
	Continent string    `json:"continent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
