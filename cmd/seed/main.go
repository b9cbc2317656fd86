// Command seed loads the historical disease datasets into Postgres: the
// localisation CSV (country and continent per row), the coronavirus daily
// report CSV and the monkeypox daily report CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/episurv/reportcase-api/internal/config"
	"github.com/episurv/reportcase-api/internal/db"
	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/logger"
	"github.com/episurv/reportcase-api/internal/repository/dao"
)

const (
	diseaseIDCoronavirus = 1
	diseaseIDMonkeypox   = 2

	seedUserEmail = "seed@reportcase.local"

	insertBatchSize = 500
)

// countryCorrections aligns the country names used by the report datasets
// with the ones in the localisation dataset.
var countryCorrections = map[string]string{
	"Bosnia and Herzegovina":       "Bosnia And Herzegovina",
	"United States":                "USA",
	"Democratic Republic of Congo": "Democratic Republic Of The Congo",
	"Czechia":                      "Czech Republic",
	"United Kingdom":               "UK",
	"Vietnam":                      "Viet Nam",
}

func main() {
	localisationsPath := flag.String("localisations", "", "path to the localisation CSV (country,continent)")
	coronaPath := flag.String("corona", "", "path to the coronavirus daily report CSV")
	variolePath := flag.String("variole", "", "path to the monkeypox daily report CSV")
	reset := flag.Bool("reset", false, "drop and recreate all tables before seeding")
	flag.Parse()

	if err := run(*localisationsPath, *coronaPath, *variolePath, *reset); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(localisationsPath, coronaPath, variolePath string, reset bool) error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var database *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		database, err = db.OpenPostgresWithURL(dbURL)
	} else {
		database, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if reset {
		zap.L().Info("dropping existing tables")
		err = database.Migrator().DropTable(&dao.Reportcase{}, &dao.Disease{}, &dao.Localization{}, &dao.User{})
		if err != nil {
			return fmt.Errorf("failed to drop tables -> %w", err)
		}
		if err = dao.InitTables(database); err != nil {
			return fmt.Errorf("failed to recreate tables -> %w", err)
		}
	}

	userID, err := seedUser(database)
	if err != nil {
		return fmt.Errorf("failed to seed user -> %w", err)
	}

	if err = seedDiseases(database); err != nil {
		return fmt.Errorf("failed to seed diseases -> %w", err)
	}

	countryIDs := map[string]uint{}
	if localisationsPath != "" {
		countryIDs, err = seedLocalizations(database, localisationsPath)
		if err != nil {
			return fmt.Errorf("failed to seed localizations -> %w", err)
		}
	} else {
		countryIDs, err = loadCountryIDs(database)
		if err != nil {
			return fmt.Errorf("failed to load localizations -> %w", err)
		}
	}

	if coronaPath != "" {
		if err = seedCoronaReports(database, coronaPath, countryIDs, userID); err != nil {
			return fmt.Errorf("failed to seed coronavirus reports -> %w", err)
		}
	}

	if variolePath != "" {
		if err = seedVarioleReports(database, variolePath, countryIDs, userID); err != nil {
			return fmt.Errorf("failed to seed monkeypox reports -> %w", err)
		}
	}

	zap.L().Info("seeding completed")

	return nil
}

// seedUser creates the technical user owning the seeded reportcases, or
// reuses it when it already exists.
func seedUser(database *gorm.DB) (uint, error) {
	var existing dao.User
	result := database.Where("email = ?", seedUserEmail).First(&existing)
	if result.Error == nil {
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(time.Now().Format(time.RFC3339Nano)), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := dao.User{
		Email:    seedUserEmail,
		Password: string(hash),
		Name:     "Seeder",
	}
	if result = database.Create(&user); result.Error != nil {
		return 0, result.Error
	}

	return user.ID, nil
}

func seedDiseases(database *gorm.DB) error {
	diseases := []dao.Disease{
		{ID: diseaseIDCoronavirus, Name: "Coronavirus"},
		{ID: diseaseIDMonkeypox, Name: "Monkeypox"},
	}

	for _, disease := range diseases {
		result := database.Where(dao.Disease{ID: disease.ID}).FirstOrCreate(&disease)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}

func seedLocalizations(database *gorm.DB, path string) (map[string]uint, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	countryCol, err := columnIndex(header, "country")
	if err != nil {
		return nil, err
	}
	continentCol, err := columnIndex(header, "continent")
	if err != nil {
		return nil, err
	}

	localizations := make([]dao.Localization, 0, len(rows))
	for _, row := range rows {
		localizations = append(localizations, dao.Localization{
			Country:   row[countryCol],
			Continent: row[continentCol],
		})
	}

	result := database.CreateInBatches(&localizations, insertBatchSize)
	if result.Error != nil {
		return nil, result.Error
	}

	zap.L().Info("localizations seeded", zap.Int("count", len(localizations)))

	countryIDs := make(map[string]uint, len(localizations))
	for _, localization := range localizations {
		countryIDs[localization.Country] = localization.ID
	}

	return countryIDs, nil
}

func loadCountryIDs(database *gorm.DB) (map[string]uint, error) {
	var localizations []dao.Localization
	if result := database.Find(&localizations); result.Error != nil {
		return nil, result.Error
	}

	countryIDs := make(map[string]uint, len(localizations))
	for _, localization := range localizations {
		countryIDs[localization.Country] = localization.ID
	}

	return countryIDs, nil
}

func seedCoronaReports(database *gorm.DB, path string, countryIDs map[string]uint, userID uint) error {
	rows, header, err := readCSV(path)
	if err != nil {
		return err
	}

	dateCol, err := columnIndex(header, "date")
	if err != nil {
		return err
	}
	countryCol, err := columnIndex(header, "country")
	if err != nil {
		return err
	}
	confirmedCol, err := columnIndex(header, "cumulative_total_cases")
	if err != nil {
		return err
	}
	deathsCol, err := columnIndex(header, "cumulative_total_deaths")
	if err != nil {
		return err
	}
	activeCol, err := columnIndex(header, "active_cases")
	if err != nil {
		return err
	}

	var reportcases []dao.Reportcase
	skipped := 0
	for _, row := range rows {
		localizationID, ok := countryIDs[correctCountry(row[countryCol])]
		if !ok {
			skipped++
			continue
		}

		dateInfo, err := time.Parse(domain.DateLayout, row[dateCol])
		if err != nil {
			skipped++
			continue
		}

		confirmed, okConfirmed := parseCount(row[confirmedCol])
		deaths, okDeaths := parseCount(row[deathsCol])
		active, okActive := parseCount(row[activeCol])
		if !okConfirmed || !okDeaths || !okActive {
			skipped++
			continue
		}

		reportcases = append(reportcases, dao.Reportcase{
			TotalConfirmed: confirmed,
			TotalDeaths:    deaths,
			TotalActive:    active,
			DateInfo:       dateInfo,
			DiseaseID:      diseaseIDCoronavirus,
			LocalizationID: localizationID,
			UserID:         userID,
		})
	}

	if err := insertReportcases(database, reportcases); err != nil {
		return err
	}

	zap.L().Info("coronavirus reports seeded",
		zap.Int("count", len(reportcases)),
		zap.Int("skipped", skipped),
	)

	return nil
}

func seedVarioleReports(database *gorm.DB, path string, countryIDs map[string]uint, userID uint) error {
	rows, header, err := readCSV(path)
	if err != nil {
		return err
	}

	dateCol, err := columnIndex(header, "date")
	if err != nil {
		return err
	}
	locationCol, err := columnIndex(header, "location")
	if err != nil {
		return err
	}
	isoCol, err := columnIndex(header, "iso_code")
	if err != nil {
		return err
	}
	casesCol, err := columnIndex(header, "total_cases")
	if err != nil {
		return err
	}
	deathsCol, err := columnIndex(header, "total_deaths")
	if err != nil {
		return err
	}

	var reportcases []dao.Reportcase
	skipped := 0
	for _, row := range rows {
		// OWID rows are aggregates (world, continents), not countries.
		if strings.Contains(row[isoCol], "OWID") {
			skipped++
			continue
		}

		localizationID, ok := countryIDs[correctCountry(row[locationCol])]
		if !ok {
			skipped++
			continue
		}

		dateInfo, err := time.Parse(domain.DateLayout, row[dateCol])
		if err != nil {
			skipped++
			continue
		}

		confirmed, okConfirmed := parseCount(row[casesCol])
		deaths, okDeaths := parseCount(row[deathsCol])
		if !okConfirmed || !okDeaths {
			skipped++
			continue
		}

		reportcases = append(reportcases, dao.Reportcase{
			TotalConfirmed: confirmed,
			TotalDeaths:    deaths,
			TotalActive:    0,
			DateInfo:       dateInfo,
			DiseaseID:      diseaseIDMonkeypox,
			LocalizationID: localizationID,
			UserID:         userID,
		})
	}

	if err := insertReportcases(database, reportcases); err != nil {
		return err
	}

	zap.L().Info("monkeypox reports seeded",
		zap.Int("count", len(reportcases)),
		zap.Int("skipped", skipped),
	)

	return nil
}

func insertReportcases(database *gorm.DB, reportcases []dao.Reportcase) error {
	if len(reportcases) == 0 {
		return nil
	}

	result := database.CreateInBatches(&reportcases, insertBatchSize)

	return result.Error
}

func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header of %v -> %w", path, err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %v -> %w", path, err)
		}

		rows = append(rows, row)
	}

	return rows, header, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("column %q not found in CSV header", name)
}

func correctCountry(name string) string {
	for fragment, corrected := range countryCorrections {
		if strings.Contains(name, fragment) {
			return corrected
		}
	}

	return name
}

// parseCount parses a count cell. Cells can hold float notation such as
// "29.0". Empty and negative values are rejected.
func parseCount(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0, false
	}

	return int(f), true
}
