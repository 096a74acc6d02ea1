package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchProgress(t *testing.T, app *fiber.App, token string) (id uint, streakDays int) {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var body struct {
		Data struct {
			Progress struct {
				ID         uint `json:"ID"`
				StreakDays int  `json:"StreakDays"`
			} `json:"progress"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Data.Progress.ID, body.Data.Progress.StreakDays
}

func TestRegisterSeedsProgress(t *testing.T) {
	app := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username":     "fresh",
		"email":        "fresh@example.com",
		"PasswordHash": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &reg))
	require.NotEmpty(t, reg.Token)

	// The progress row exists before the first login
	id, streak := fetchProgress(t, app, reg.Token)
	assert.NotZero(t, id)
	assert.Equal(t, 0, streak)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "fresh",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	_, streak = fetchProgress(t, app, reg.Token)
	assert.Equal(t, 1, streak, "first login starts the streak")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := setupTestApp(t)
	registerAndLogin(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "aspirant",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
