package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestRegisterResponseUsesUserKey(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "staff_accounts" WHERE email =`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "staff_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/auth/register", ctrl.Register)

	body := `{"fullName":"Hari Shrestha","phone":"090-1111-2222",` +
		`"nationality":"Nepalese","email":"hari@example.com",` +
		`"password":"secret123","confirmPassword":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Account created successfully! Please log in.", payload["message"])
	assert.NotContains(t, payload, "data")

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok, "user object missing from register response")
	assert.Equal(t, "hari@example.com", user["email"])
	assert.Equal(t, "Hari Shrestha", user["fullName"])
	assert.NotContains(t, user, "password")

	assert.NoError(t, mock.ExpectationsWereMet())
}
