package usecases

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/utils"
)

// ErrSubmissionFailed is returned for any persistence failure during intake.
// The cause is logged, never returned to the client.
var ErrSubmissionFailed = errors.New("we could not save your feedback, please try again")

// ValidationError carrega as mensagens por campo
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// SubmissionInput é o payload do formulário público
type SubmissionInput struct {
	TransactionDate         string `json:"transaction_date" form:"transaction_date" validate:"required,datetime=2006-01-02"`
	FirstName               string `json:"first_name" form:"first_name" validate:"required,max=255"`
	MiddleName              string `json:"middle_name" form:"middle_name" validate:"max=255"`
	LastName                string `json:"last_name" form:"last_name" validate:"required,max=255"`
	Email                   string `json:"email" form:"email" validate:"omitempty,max=255,email"`
	SchoolID                *uint  `json:"school_id" form:"school_id" validate:"omitempty,gt=0"`
	OtherSchoolSpecify      string `json:"other_school_specify" form:"other_school_specify" validate:"max=255"`
	TransactionType         string `json:"transaction_type" form:"transaction_type" validate:"required,oneof=enrollment payment transcript certification scholarship consultation other"`
	OtherTransactionSpecify string `json:"other_transaction_specify" form:"other_transaction_specify" validate:"required_if=TransactionType other,max=255"`
	SatisfactionRating      string `json:"satisfaction_rating" form:"satisfaction_rating" validate:"required,oneof=dissatisfied neutral satisfied"`
	Reason                  string `json:"reason" form:"reason" validate:"required,min=10,max=2000"`
}

// formSteps lists the fields each step of the public form collects.
var formSteps = map[int][]string{
	1: {"transaction_date", "school_id", "other_school_specify", "transaction_type", "other_transaction_specify"},
	2: {"first_name", "middle_name", "last_name", "email"},
	3: {"satisfaction_rating", "reason"},
}

// Normalized remove espaços das bordas de todos os campos de texto
func (in SubmissionInput) Normalized() SubmissionInput {
	in.TransactionDate = strings.TrimSpace(in.TransactionDate)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.MiddleName = strings.TrimSpace(in.MiddleName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.OtherSchoolSpecify = strings.TrimSpace(in.OtherSchoolSpecify)
	in.TransactionType = strings.TrimSpace(in.TransactionType)
	in.OtherTransactionSpecify = strings.TrimSpace(in.OtherTransactionSpecify)
	in.SatisfactionRating = strings.TrimSpace(in.SatisfactionRating)
	in.Reason = strings.TrimSpace(in.Reason)
	// um select vazio em form-urlencoded chega como school_id=0
	if in.SchoolID != nil && *in.SchoolID == 0 {
		in.SchoolID = nil
	}
	if in.TransactionType != string(entities.TransactionOther) {
		in.OtherTransactionSpecify = ""
	}
	return in
}

// toEntity assumes the input was normalized and validated.
func (in SubmissionInput) toEntity() *entities.SurveyResponse {
	txDate, _ := time.Parse("2006-01-02", in.TransactionDate)
	return &entities.SurveyResponse{
		TransactionDate:         txDate,
		FirstName:               in.FirstName,
		MiddleName:              in.MiddleName,
		LastName:                in.LastName,
		Email:                   in.Email,
		SchoolID:                in.SchoolID,
		OtherSchoolSpecify:      in.OtherSchoolSpecify,
		TransactionType:         entities.TransactionType(in.TransactionType),
		OtherTransactionSpecify: in.OtherTransactionSpecify,
		SatisfactionRating:      entities.SatisfactionRating(in.SatisfactionRating),
		Reason:                  in.Reason,
		Status:                  entities.StatusSubmitted,
	}
}

// IntakeValidator aplica as regras de campo do formulário
type IntakeValidator struct {
	validate *validator.Validate
	location *time.Location
	clock    func() time.Time
}

// NewIntakeValidator cria o validador usando o fuso configurado para "hoje"
func NewIntakeValidator(location *time.Location, clock func() time.Time) *IntakeValidator {
	if location == nil {
		location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(schoolChoiceValidation, SubmissionInput{})

	return &IntakeValidator{validate: v, location: location, clock: clock}
}

// schoolChoiceValidation exige exatamente uma entre escola cadastrada e escola digitada
func schoolChoiceValidation(sl validator.StructLevel) {
	in := sl.Current().Interface().(SubmissionInput)
	hasSchool := in.SchoolID != nil
	hasOther := strings.TrimSpace(in.OtherSchoolSpecify) != ""

	switch {
	case !hasSchool && !hasOther:
		sl.ReportError(in.SchoolID, "school_id", "SchoolID", "school_required", "")
	case hasSchool && hasOther:
		sl.ReportError(in.OtherSchoolSpecify, "other_school_specify", "OtherSchoolSpecify", "school_exclusive", "")
	}
}

// Validate returns field-level messages keyed by the JSON field name.
// The input is expected to be normalized.
func (v *IntakeValidator) Validate(in SubmissionInput) map[string]string {
	fields := make(map[string]string)

	if err := v.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fields["form"] = "The submitted form could not be read."
			return fields
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = message(fe)
			}
		}
	}

	if _, bad := fields["transaction_date"]; !bad && in.TransactionDate != "" {
		txDate, err := time.Parse("2006-01-02", in.TransactionDate)
		today := utils.CalendarDate(v.clock(), v.location)
		if err == nil && txDate.After(today) {
			fields["transaction_date"] = "The transaction date cannot be in the future."
		}
	}

	return fields
}

// StepFields devolve os campos de uma etapa do formulário
func StepFields(step int) ([]string, bool) {
	fields, ok := formSteps[step]
	return fields, ok
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "required_if":
		return fmt.Sprintf("The %s field is required when the transaction type is other.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "email":
		return "The email must be a valid email address."
	case "oneof", "gt":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date (YYYY-MM-DD).", field)
	case "school_required":
		return "Select a school or specify another school."
	case "school_exclusive":
		return "Choose either a listed school or another school, not both."
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}
