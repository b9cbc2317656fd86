package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDiseaseNotFound = errors.New("disease not found")

type Disease struct {
	ID uint `gorm:"primaryKey"`

	Name string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DiseaseDAO struct {
	db *gorm.DB
}

func NewDiseaseDAO(db *gorm.DB) *DiseaseDAO {
	return &DiseaseDAO{
		db: db,
	}
}

func (d *DiseaseDAO) FindAll(ctx context.Context) ([]Disease, error) {
	var diseases []Disease

	result := d.db.WithContext(ctx).Find(&diseases)
	if result.Error != nil {
		return nil, result.Error
	}

	return diseases, nil
}

func (d *DiseaseDAO) FindByID(ctx context.Context, id uint) (Disease, error) {
	var disease Disease

	result := d.db.WithContext(ctx).First(&disease, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Disease{}, ErrDiseaseNotFound
		}

		return Disease{}, result.Error
	}

	return disease, nil
}

func (d *DiseaseDAO) Insert(ctx context.Context, disease Disease) (Disease, error) {
	result := d.db.WithContext(ctx).Create(&disease)
	if result.Error != nil {
		return Disease{}, result.Error
	}

	return disease, nil
}

func (d *DiseaseDAO) Update(ctx context.Context, disease Disease) (Disease, error) {
	result := d.db.WithContext(ctx).Save(&disease)
	if result.Error != nil {
		return Disease{}, result.Error
	}

	return disease, nil
}

func (d *DiseaseDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Disease{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDiseaseNotFound
	}

	return nil
}
