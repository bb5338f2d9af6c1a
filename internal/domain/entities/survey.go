package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// SatisfactionRating é a avaliação dada pelo cliente
type SatisfactionRating string

const (
	RatingDissatisfied SatisfactionRating = "dissatisfied"
	RatingNeutral      SatisfactionRating = "neutral"
	RatingSatisfied    SatisfactionRating = "satisfied"
)

// SatisfactionRatings lista as avaliações na ordem exibida no formulário
var SatisfactionRatings = []SatisfactionRating{RatingDissatisfied, RatingNeutral, RatingSatisfied}

// Label retorna a avaliação capitalizada ("Satisfied")
func (r SatisfactionRating) Label() string {
	return capitalize(string(r))
}

// Valid reports whether r is one of the known ratings.
func (r SatisfactionRating) Valid() bool {
	for _, known := range SatisfactionRatings {
		if r == known {
			return true
		}
	}
	return false
}

// TransactionType é o tipo de atendimento avaliado
type TransactionType string

const (
	TransactionEnrollment    TransactionType = "enrollment"
	TransactionPayment       TransactionType = "payment"
	TransactionTranscript    TransactionType = "transcript"
	TransactionCertification TransactionType = "certification"
	TransactionScholarship   TransactionType = "scholarship"
	TransactionConsultation  TransactionType = "consultation"
	TransactionOther         TransactionType = "other"
)

// TransactionTypes lista os tipos na ordem exibida no formulário
var TransactionTypes = []TransactionType{
	TransactionEnrollment,
	TransactionPayment,
	TransactionTranscript,
	TransactionCertification,
	TransactionScholarship,
	TransactionConsultation,
	TransactionOther,
}

var transactionTypeLabels = map[TransactionType]string{
	TransactionEnrollment:    "Enrollment",
	TransactionPayment:       "Payment",
	TransactionTranscript:    "Transcript of Records",
	TransactionCertification: "Certification",
	TransactionScholarship:   "Scholarship",
	TransactionConsultation:  "Consultation",
	TransactionOther:         "Other",
}

// Label retorna o rótulo de exibição. Tipos desconhecidos caem no valor bruto capitalizado.
func (t TransactionType) Label() string {
	if label, ok := transactionTypeLabels[t]; ok {
		return label
	}
	return capitalize(strings.ReplaceAll(string(t), "_", " "))
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

// Status values for the administrative workflow.
const (
	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
	StatusResolved  = "resolved"
)

// Statuses lists every workflow status.
var Statuses = []string{StatusSubmitted, StatusReviewed, StatusResolved}

// SurveyResponse representa uma resposta de satisfação enviada pelo formulário público
type SurveyResponse struct {
	ID                      string             `json:"id" gorm:"primaryKey;column:id;size:36"`
	TransactionDate         time.Time          `json:"transaction_date" gorm:"column:transaction_date;type:date;not null;index"`
	FirstName               string             `json:"first_name" gorm:"column:first_name;size:255;not null"`
	MiddleName              string             `json:"middle_name" gorm:"column:middle_name;size:255"`
	LastName                string             `json:"last_name" gorm:"column:last_name;size:255;not null"`
	Email                   string             `json:"email" gorm:"column:email;size:255"`
	SchoolID                *uint              `json:"school_id" gorm:"column:school_id;index"`
	OtherSchoolSpecify      string             `json:"other_school_specify" gorm:"column:other_school_specify;size:255"`
	TransactionType         TransactionType    `json:"transaction_type" gorm:"column:transaction_type;size:32;not null;index"`
	OtherTransactionSpecify string             `json:"other_transaction_specify" gorm:"column:other_transaction_specify;size:255"`
	SatisfactionRating      SatisfactionRating `json:"satisfaction_rating" gorm:"column:satisfaction_rating;size:32;not null;index"`
	Reason                  string             `json:"reason" gorm:"column:reason;type:text;not null"`
	Status                  string             `json:"status" gorm:"column:status;size:32;not null;default:submitted"`
	Base

	// Relações
	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID"`
}

func (SurveyResponse) TableName() string { return "survey_responses" }

// BeforeCreate atribui um UUIDv7 (ordenável pela criação) e o status padrão.
// Datas são gravadas em UTC; transaction_date fica às 00:00 do dia.
func (s *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	y, m, d := s.TransactionDate.Date()
	s.TransactionDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !s.CreatedAt.IsZero() {
		s.CreatedAt = s.CreatedAt.UTC()
	}

	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate survey id: %w", err)
		}
		s.ID = id.String()
	}
	if s.Status == "" {
		s.Status = StatusSubmitted
	}
	return nil
}

// FullName compõe o nome do cliente ignorando partes vazias
func (s SurveyResponse) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.FirstName, s.MiddleName, s.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IsOtherSchool indica que a resposta usa uma escola digitada em vez de uma referência
func (s SurveyResponse) IsOtherSchool() bool {
	return s.SchoolID == nil && strings.TrimSpace(s.OtherSchoolSpecify) != ""
}

// SchoolName retorna o nome da escola referenciada (mesmo se excluída logicamente)
func (s SurveyResponse) SchoolName() string {
	if s.School != nil {
		return s.School.Name
	}
	return ""
}

// SchoolDisplayName returns the school name, or "Other: <text>" for free-text schools.
func (s SurveyResponse) SchoolDisplayName() string {
	if name := s.SchoolName(); name != "" {
		return name
	}
	return otherDisplay(s.OtherSchoolSpecify)
}

// TransactionTypeDisplay returns the type label, or "Other: <text>" for other.
func (s SurveyResponse) TransactionTypeDisplay() string {
	if s.TransactionType == TransactionOther {
		return otherDisplay(s.OtherTransactionSpecify)
	}
	return s.TransactionType.Label()
}

func otherDisplay(detail string) string {
	if detail = strings.TrimSpace(detail); detail != "" {
		return "Other: " + detail
	}
	return "Other"
}

// cases.Caser keeps state, so each call gets its own.
func capitalize(s string) string {
	return cases.Title(language.English).String(s)
}
