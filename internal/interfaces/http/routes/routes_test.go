package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/config"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/export"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/testutil"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := testutil.SetupSQLiteTestDB(t)
	cfg := config.Config{
		Timezone:  "Asia/Manila",
		Location:  testutil.Manila,
		Dashboard: config.DefaultDashboardConfig(),
	}

	app := fiber.New()
	setupRoutes(app, db, cfg, metrics.New(), testutil.Clock)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, target, contentType, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

const validSubmission = `{
	"transaction_date": "2024-05-14",
	"first_name": "Juan",
	"last_name": "Dela Cruz",
	"email": "juan@example.com",
	"other_school_specify": "Harbor College",
	"transaction_type": "transcript",
	"satisfaction_rating": "satisfied",
	"reason": "Released my records the same day."
}`

func TestHealthAndMetrics(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode(t, body)["status"])

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationJSON, validSubmission)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `survey_submissions_total{rating="satisfied"} 1`)
	assert.Contains(t, string(body), `route="/api/v1/surveys"`)
}

func TestFormOptions(t *testing.T) {
	app, db := setupTestApp(t)
	testutil.CreateSchool(t, db, "State University")

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/form/options", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, body)
	types := out["transaction_types"].([]interface{})
	require.Len(t, types, 7)
	assert.Equal(t, map[string]interface{}{"value": "transcript", "label": "Transcript of Records"}, types[2])
	assert.Len(t, out["satisfaction_ratings"], 3)
	assert.Len(t, out["schools"], 1)
}

func TestSubmitSurvey(t *testing.T) {
	app, db := setupTestApp(t)

	t.Run("json", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationJSON, validSubmission)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		data := decode(t, body)["data"].(map[string]interface{})
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "submitted", data["status"])
		assert.Equal(t, "Harbor College", data["other_school_specify"])
	})

	t.Run("form urlencoded", func(t *testing.T) {
		school := testutil.CreateSchool(t, db, "State University")
		form := url.Values{
			"transaction_date":    {"2024-05-15"},
			"first_name":          {"Ana"},
			"last_name":           {"Garcia"},
			"school_id":           {strconv.FormatUint(uint64(school.ID), 10)},
			"transaction_type":    {"payment"},
			"satisfaction_rating": {"neutral"},
			"reason":              {"The cashier line was long."},
		}

		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationForm, form.Encode())
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		data := decode(t, body)["data"].(map[string]interface{})
		assert.Equal(t, "State University", data["school"].(map[string]interface{})["name"])
	})

	t.Run("form with other school and an empty school select", func(t *testing.T) {
		form := url.Values{
			"transaction_date":     {"2024-05-15"},
			"first_name":           {"Ana"},
			"last_name":            {"Garcia"},
			"school_id":            {""},
			"other_school_specify": {"Harbor College"},
			"transaction_type":     {"payment"},
			"satisfaction_rating":  {"satisfied"},
			"reason":               {"Paid my fees in five minutes."},
		}

		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationForm, form.Encode())
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		data := decode(t, body)["data"].(map[string]interface{})
		assert.Nil(t, data["school_id"])
		assert.Equal(t, "Harbor College", data["other_school_specify"])
	})

	t.Run("validation errors echo the input", func(t *testing.T) {
		payload := `{"transaction_date": "2030-01-01", "first_name": "Juan", "transaction_type": "other"}`
		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationJSON, payload)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		out := decode(t, body)
		errs := out["errors"].(map[string]interface{})
		assert.Equal(t, "The transaction date cannot be in the future.", errs["transaction_date"])
		assert.Contains(t, errs, "last_name")
		assert.Contains(t, errs, "school_id")
		assert.Contains(t, errs, "other_transaction_specify")
		assert.Contains(t, errs, "reason")
		assert.Equal(t, "Juan", out["input"].(map[string]interface{})["first_name"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationJSON, `{"first_name":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("store failure keeps the input and hides the cause", func(t *testing.T) {
		require.NoError(t, db.Migrator().DropTable(&entities.SurveyResponse{}))

		resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys", fiber.MIMEApplicationJSON, validSubmission)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		out := decode(t, body)
		assert.NotContains(t, out["error"], "no such table")
		assert.Equal(t, "Juan", out["input"].(map[string]interface{})["first_name"])
	})
}

func TestValidateStep(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/surveys/steps/1/validate", fiber.MIMEApplicationJSON,
		`{"transaction_date": "2024-05-15", "other_school_specify": "Harbor College", "transaction_type": "payment"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, true, decode(t, body)["valid"])

	resp, body = doRequest(t, app, http.MethodPost, "/api/v1/surveys/steps/3/validate", fiber.MIMEApplicationJSON,
		`{"satisfaction_rating": "satisfied", "reason": "short"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	errs := decode(t, body)["errors"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"reason": "The reason must be at least 10 characters."}, errs)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/surveys/steps/x/validate", fiber.MIMEApplicationJSON, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminSurveys(t *testing.T) {
	app, db := setupTestApp(t)
	state := testutil.CreateSchool(t, db, "State University")
	a := testutil.CreateSurvey(t, db, testutil.WithSchool(state))
	testutil.CreateSurvey(t, db, testutil.WithRating(entities.RatingDissatisfied))

	t.Run("list with filters and meta", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/admin/surveys?satisfaction_rating=satisfied&limit=1", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode(t, body)
		meta := out["meta"].(map[string]interface{})
		assert.Equal(t, 1.0, meta["total"])
		assert.Equal(t, 1.0, meta["total_pages"])
		assert.Equal(t, false, meta["has_next_page"])
		assert.Equal(t, map[string]interface{}{"satisfaction_rating": "satisfied"}, out["filters"])
	})

	t.Run("legacy view", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/admin/surveys?view=legacy&school=State%20University", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decode(t, body)["data"].([]interface{})
		require.Len(t, data, 1)
		row := data[0].(map[string]interface{})
		assert.Equal(t, "Juan Dela Cruz", row["client_name"])
		assert.Equal(t, "State University", row["school_hei"])
	})

	t.Run("get and update status", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/admin/surveys/"+a.ID, "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/admin/surveys/missing", "", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, body := doRequest(t, app, http.MethodPatch, "/api/v1/admin/surveys/"+a.ID+"/status", fiber.MIMEApplicationJSON, `{"status": "resolved"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "resolved", decode(t, body)["data"].(map[string]interface{})["status"])

		resp, _ = doRequest(t, app, http.MethodPatch, "/api/v1/admin/surveys/"+a.ID+"/status", fiber.MIMEApplicationJSON, `{"status": "deleted"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("dashboard", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/admin/dashboard?date_range=this_month", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode(t, body)
		summary := out["data"].(map[string]interface{})["summary"].(map[string]interface{})
		assert.Equal(t, 2.0, summary["total"])
		assert.Equal(t, 50.0, summary["satisfaction_rate"])
		assert.Contains(t, out["performance"], "execution_time_ms")
	})

	t.Run("export", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/api/v1/admin/surveys/export?variant=flat", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, export.ContentType, resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="survey-responses-flat-20240515-100000.xlsx"`, resp.Header.Get("Content-Disposition"))
		assert.Equal(t, "2", resp.Header.Get("X-Export-Rows"))
		assert.NotEmpty(t, body)
	})
}

func TestAdminSchools(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/admin/schools", fiber.MIMEApplicationJSON, `{"name": "State University"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := decode(t, body)["data"].(map[string]interface{})["id"].(float64)
	path := fmt.Sprintf("/api/v1/admin/schools/%d", int(id))

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/admin/schools", fiber.MIMEApplicationJSON, `{"name": "State University"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodPut, path, fiber.MIMEApplicationJSON, `{"name": "State University Main"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "State University Main", decode(t, body)["data"].(map[string]interface{})["name"])

	resp, _ = doRequest(t, app, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/schools", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode(t, body)["data"])

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/admin/schools?include_deleted=true", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(t, body)["data"], 1)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/admin/schools/abc", fiber.MIMEApplicationJSON, `{"name": "x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
