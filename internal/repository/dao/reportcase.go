package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrReportcaseNotFound    = errors.New("reportcase not found")
	ErrReferencedRowNotFound = errors.New("referenced disease or localization does not exist")
)

type Reportcase struct {
	ID uint `gorm:"primaryKey"`

	TotalConfirmed int       `gorm:"not null"`
	TotalDeaths    int       `gorm:"not null"`
	TotalActive    int       `gorm:"not null"`
	DateInfo       time.Time `gorm:"type:date;not null"`

	DiseaseID uint    `gorm:"not null"`
	Disease   Disease `gorm:"foreignKey:DiseaseID"`

	LocalizationID uint         `gorm:"not null"`
	Localization   Localization `gorm:"foreignKey:LocalizationID"`

	UserID uint `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ReportcaseDAO struct {
	db *gorm.DB
}

func NewReportcaseDAO(db *gorm.DB) *ReportcaseDAO {
	return &ReportcaseDAO{
		db: db,
	}
}

func (d *ReportcaseDAO) FindAll(ctx context.Context) ([]Reportcase, error) {
	var reportcases []Reportcase

	result := d.db.WithContext(ctx).Find(&reportcases)
	if result.Error != nil {
		return nil, result.Error
	}

	return reportcases, nil
}

func (d *ReportcaseDAO) FindByID(ctx context.Context, id uint) (Reportcase, error) {
	var reportcase Reportcase

	result := d.db.WithContext(ctx).First(&reportcase, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reportcase{}, ErrReportcaseNotFound
		}

		return Reportcase{}, result.Error
	}

	return reportcase, nil
}

func (d *ReportcaseDAO) Insert(ctx context.Context, reportcase Reportcase) (Reportcase, error) {
	result := d.db.WithContext(ctx).Create(&reportcase)
	if result.Error != nil {
		return Reportcase{}, classifyError(result.Error)
	}

	return reportcase, nil
}

func (d *ReportcaseDAO) Update(ctx context.Context, reportcase Reportcase) (Reportcase, error) {
	result := d.db.WithContext(ctx).Save(&reportcase)
	if result.Error != nil {
		return Reportcase{}, classifyError(result.Error)
	}

	return reportcase, nil
}

func (d *ReportcaseDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Reportcase{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReportcaseNotFound
	}

	return nil
}

// classifyError maps a Postgres foreign-key violation on diseaseId or
// localizationId to ErrReferencedRowNotFound.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrReferencedRowNotFound
	}

	return err
}
