package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrLocalizationNotFound = errors.New("localization not found")

type Localization struct {
	ID uint `gorm:"primaryKey"`

	Country   string
	Continent string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LocalizationDAO struct {
	db *gorm.DB
}

func NewLocalizationDAO(db *gorm.DB) *LocalizationDAO {
	return &LocalizationDAO{
		db: db,
	}
}

func (d *LocalizationDAO) FindAll(ctx context.Context) ([]Localization, error) {
	var localizations []Localization

	result := d.db.WithContext(ctx).Find(&localizations)
	if result.Error != nil {
		return nil, result.Error
	}

	return localizations, nil
}

func (d *LocalizationDAO) FindByID(ctx context.Context, id uint) (Localization, error) {
	var localization Localization

	result := d.db.WithContext(ctx).First(&localization, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Localization{}, ErrLocalizationNotFound
		}

		return Localization{}, result.Error
	}

	return localization, nil
}

func (d *LocalizationDAO) Insert(ctx context.Context, localization Localization) (Localization, error) {
	result := d.db.WithContext(ctx).Create(&localization)
	if result.Error != nil {
		return Localization{}, result.Error
	}

	return localization, nil
}

func (d *LocalizationDAO) Update(ctx context.Context, localization Localization) (Localization, error) {
	result := d.db.WithContext(ctx).Save(&localization)
	if result.Error != nil {
		return Localization{}, result.Error
	}

	return localization, nil
}

func (d *LocalizationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Localization{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLocalizationNotFound
	}

	return nil
}
