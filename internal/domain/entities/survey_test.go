package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeLabel(t *testing.T) {
	assert.Equal(t, "Transcript of Records", TransactionTranscript.Label())
	assert.Equal(t, "Consultation", TransactionConsultation.Label())
	assert.Equal(t, "Other", TransactionOther.Label())
	assert.Equal(t, "Library Card", TransactionType("library_card").Label())

	for _, tt := range TransactionTypes {
		assert.True(t, tt.Valid(), tt)
	}
	assert.False(t, TransactionType("library_card").Valid())
}

func TestSatisfactionRatingLabel(t *testing.T) {
	assert.Equal(t, "Satisfied", RatingSatisfied.Label())
	assert.Equal(t, "Dissatisfied", RatingDissatisfied.Label())
	assert.True(t, RatingNeutral.Valid())
	assert.False(t, SatisfactionRating("meh").Valid())
}

func TestDisplayHelpers(t *testing.T) {
	id := uint(3)
	listed := SurveyResponse{
		FirstName:       "Juan",
		MiddleName:      " ",
		LastName:        "Dela Cruz",
		SchoolID:        &id,
		School:          &School{ID: id, Name: "State University"},
		TransactionType: TransactionScholarship,
	}
	assert.Equal(t, "Juan Dela Cruz", listed.FullName())
	assert.False(t, listed.IsOtherSchool())
	assert.Equal(t, "State University", listed.SchoolDisplayName())
	assert.Equal(t, "Scholarship", listed.TransactionTypeDisplay())

	other := SurveyResponse{
		FirstName:               "Ana",
		MiddleName:              "Lopez",
		LastName:                "Garcia",
		OtherSchoolSpecify:      "Harbor College",
		TransactionType:         TransactionOther,
		OtherTransactionSpecify: "Lost ID",
	}
	assert.Equal(t, "Ana Lopez Garcia", other.FullName())
	assert.True(t, other.IsOtherSchool())
	assert.Equal(t, "Other: Harbor College", other.SchoolDisplayName())
	assert.Equal(t, "Other: Lost ID", other.TransactionTypeDisplay())

	bare := SurveyResponse{TransactionType: TransactionOther}
	assert.Equal(t, "Other", bare.SchoolDisplayName())
	assert.Equal(t, "Other", bare.TransactionTypeDisplay())
}

func TestLegacyView(t *testing.T) {
	s := SurveyResponse{
		ID:                 "abc",
		FirstName:          "Ana",
		LastName:           "Garcia",
		OtherSchoolSpecify: "Harbor College",
		TransactionType:    TransactionPayment,
		SatisfactionRating: RatingNeutral,
		Status:             StatusSubmitted,
	}

	v := s.LegacyView()
	assert.Equal(t, "Ana Garcia", v.ClientName)
	assert.Equal(t, "Other: Harbor College", v.SchoolHEI)
	assert.Equal(t, "payment", v.TransactionType)
}

func TestRatingTallyAdd(t *testing.T) {
	var tally RatingTally
	tally.Add(RatingSatisfied, 2)
	tally.Add(RatingNeutral, 1)
	tally.Add(RatingDissatisfied, 3)

	assert.Equal(t, RatingTally{Total: 6, Satisfied: 2, Neutral: 1, Dissatisfied: 3}, tally)
}
