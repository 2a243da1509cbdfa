package prefs

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleGetPreference(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("theme", "dark")
	sqlMock.ExpectQuery("SELECT \\* FROM `preferences` WHERE `key` = .+").
		WithArgs("theme", 1).
		WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/prefs/theme", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "theme", body["key"])
	assert.Equal(t, "dark", body["value"])
}

func TestHandleGetPreference_NotFound(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `preferences` WHERE `key` = .+").
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	req := httptest.NewRequest("GET", "/prefs/missing", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSetPreference(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `preferences` .+ ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/prefs/theme", strings.NewReader(`{"value":"light"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "light", body["value"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleSetPreference_BadBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/prefs/theme", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDeletePreference(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("DELETE FROM `preferences` WHERE `key` = .+").
		WithArgs("theme").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/prefs/theme", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFeature_DisabledWithoutDB(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "prefs", f.Name())
	assert.False(t, f.IsEnabled())
}
