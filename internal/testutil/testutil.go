// Package testutil holds the shared SQLite database and fixtures used by the
// package tests.
package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/database"
)

// Manila is a fixed +08:00 zone so tests do not depend on the host tzdata.
var Manila = time.FixedZone("PHT", 8*60*60)

// Now is the fixed clock used across tests: Wednesday 2024-05-15 10:00 +08:00.
var Now = time.Date(2024, time.May, 15, 10, 0, 0, 0, Manila)

// Clock returns Now.
func Clock() time.Time { return Now }

// SetupSQLiteTestDB creates an in-memory SQLite database with the production
// gorm config and migrations.
func SetupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	if err != nil {
		t.Fatalf("Failed to connect to SQLite test database: %v", err)
	}

	// cada conexão :memory: é um banco separado
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Prepare(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Date returns the calendar date y-m-d as stored (00:00 UTC).
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateSchool inserts an active school.
func CreateSchool(t *testing.T, db *gorm.DB, name string) *entities.School {
	t.Helper()

	school := &entities.School{Name: name}
	if err := db.Create(school).Error; err != nil {
		t.Fatalf("Failed to create school %q: %v", name, err)
	}
	return school
}

// SurveyOption customizes a fixture response.
type SurveyOption func(*entities.SurveyResponse)

func WithSchool(school *entities.School) SurveyOption {
	return func(s *entities.SurveyResponse) {
		s.SchoolID = &school.ID
		s.OtherSchoolSpecify = ""
	}
}

func WithOtherSchool(name string) SurveyOption {
	return func(s *entities.SurveyResponse) {
		s.SchoolID = nil
		s.OtherSchoolSpecify = name
	}
}

func WithRating(rating entities.SatisfactionRating) SurveyOption {
	return func(s *entities.SurveyResponse) { s.SatisfactionRating = rating }
}

func WithType(t entities.TransactionType, specify string) SurveyOption {
	return func(s *entities.SurveyResponse) {
		s.TransactionType = t
		s.OtherTransactionSpecify = specify
	}
}

func WithTransactionDate(date time.Time) SurveyOption {
	return func(s *entities.SurveyResponse) { s.TransactionDate = date }
}

func WithCreatedAt(at time.Time) SurveyOption {
	return func(s *entities.SurveyResponse) { s.CreatedAt = at }
}

func WithName(first, middle, last string) SurveyOption {
	return func(s *entities.SurveyResponse) {
		s.FirstName = first
		s.MiddleName = middle
		s.LastName = last
	}
}

func WithEmail(email string) SurveyOption {
	return func(s *entities.SurveyResponse) { s.Email = email }
}

func WithReason(reason string) SurveyOption {
	return func(s *entities.SurveyResponse) { s.Reason = reason }
}

// NewSurvey builds an unsaved response with sensible defaults: a satisfied
// enrollment at "Other: Test College" on 2024-05-10, submitted that day.
func NewSurvey(opts ...SurveyOption) entities.SurveyResponse {
	s := entities.SurveyResponse{
		TransactionDate:    Date(2024, time.May, 10),
		FirstName:          "Juan",
		LastName:           "Dela Cruz",
		Email:              "juan@example.com",
		OtherSchoolSpecify: "Test College",
		TransactionType:    entities.TransactionEnrollment,
		SatisfactionRating: entities.RatingSatisfied,
		Reason:             "Fast and friendly service.",
		Status:             entities.StatusSubmitted,
		Base: entities.Base{
			CreatedAt: time.Date(2024, time.May, 10, 2, 0, 0, 0, time.UTC),
		},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// CreateSurvey inserts a fixture response and returns it as stored.
func CreateSurvey(t *testing.T, db *gorm.DB, opts ...SurveyOption) entities.SurveyResponse {
	t.Helper()

	s := NewSurvey(opts...)
	if err := db.Omit("School").Create(&s).Error; err != nil {
		t.Fatalf("Failed to create survey: %v", err)
	}
	return s
}
