package entities

import "time"

// LegacySurveyView is the single-field shape (client_name + school_hei) still
// consumed by older dashboard clients.
type LegacySurveyView struct {
	ID                 string    `json:"id"`
	TransactionDate    string    `json:"transaction_date"`
	ClientName         string    `json:"client_name"`
	Email              string    `json:"email"`
	SchoolHEI          string    `json:"school_hei"`
	TransactionType    string    `json:"transaction_type"`
	SatisfactionRating string    `json:"satisfaction_rating"`
	Reason             string    `json:"reason"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// LegacyView projeta a resposta para o formato antigo
func (s SurveyResponse) LegacyView() LegacySurveyView {
	return LegacySurveyView{
		ID:                 s.ID,
		TransactionDate:    s.TransactionDate.Format("2006-01-02"),
		ClientName:         s.FullName(),
		Email:              s.Email,
		SchoolHEI:          s.SchoolDisplayName(),
		TransactionType:    string(s.TransactionType),
		SatisfactionRating: string(s.SatisfactionRating),
		Reason:             s.Reason,
		Status:             s.Status,
		CreatedAt:          s.CreatedAt,
	}
}
