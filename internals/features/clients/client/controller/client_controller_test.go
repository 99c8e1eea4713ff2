package controller

import (
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

func clientRow(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "status", "email", "password",
		"phone", "nationality", "mode_of_contact",
	}).AddRow(
		id, "Sita Thapa", "Document Translation", "active",
		"sita@example.com", "irrelevant-hash",
		"090-3333-4444", "Nepalese", "{Viber}",
	)
}

func updateApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewClientController(db)
	app.Put("/client/:id", ctrl.UpdateClient)
	return app
}

func TestUpdateClientRejectsInvalidContactMode(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id =`).
		WillReturnRows(clientRow(id))

	app := updateApp(db)
	req := httptest.NewRequest(http.MethodPut, "/client/"+id.String(),
		strings.NewReader(`{"modeOfContact":["Carrier Pigeon"]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"update must apply the same contact-mode validation as create")
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing may be written")
}

func TestUpdateClientCategorySwitchRequiresAddress(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id =`).
		WillReturnRows(clientRow(id))

	app := updateApp(db)
	req := httptest.NewRequest(http.MethodPut, "/client/"+id.String(),
		strings.NewReader(`{"category":"Visit Visa Applicant"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"switching to an address-mandatory category with no address must fail")
	assert.NoError(t, mock.ExpectationsWereMet())
}
