package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"catprep/backend/engine"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app)

	// No result yet
	resp, _ := doJSON(t, app, http.MethodGet, "/api/analytics/qa1/swot", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	submission := fiber.Map{
		"answers": map[string]map[string]interface{}{
			"0": {"0": map[string]interface{}{"answer": "A"}},
		},
		"question_times": map[string]map[string]float64{
			"0": {"0": 30},
		},
	}
	resp, raw := doJSON(t, app, http.MethodPost, "/api/tests/qa1/submit", token, submission)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, app, http.MethodGet, "/api/analytics/qa1/swot", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var swotBody struct {
		Data engine.SwotResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &swotBody))
	assert.NotEmpty(t, swotBody.Data.Strengths)
	assert.NotEmpty(t, swotBody.Data.Weaknesses)
	assert.NotEmpty(t, swotBody.Data.Opportunities)
	assert.NotEmpty(t, swotBody.Data.Threats)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/analytics/qa1/rankings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var rankBody struct {
		Data struct {
			MissedOpportunities []engine.MissedOpportunity `json:"missed_opportunities"`
			TimeWasters         []engine.TimeWaster        `json:"time_wasters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &rankBody))
	assert.LessOrEqual(t, len(rankBody.Data.MissedOpportunities), 6)
	assert.LessOrEqual(t, len(rankBody.Data.TimeWasters), 6)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/analytics/qa1/topics", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminAnalyticsForbiddenForUsers(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/tests/qa1/analytics", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
