package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"zoomcreatives_backend/internals/constants"
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

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestAuthenticateStaffMatch(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	hash := mustHash(t, "s3cret")

	mock.ExpectQuery(`SELECT \* FROM "staff_accounts" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "full_name", "email", "password", "role", "phone"}).
			AddRow(id, "Hari Adhikari", "hari@zoomcreatives.jp", hash, "", "080-1111-2222"))

	acct, err := Authenticate(db, "hari@zoomcreatives.jp", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, acct.ID)
	assert.Equal(t, "Hari Adhikari", acct.DisplayName)
	assert.Equal(t, constants.RoleAdmin, acct.Role, "blank staff role defaults to admin")
	assert.Equal(t, KindStaff, acct.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateWrongPasswordIsUniform(t *testing.T) {
	db, mock := newMockDB(t)
	hash := mustHash(t, "s3cret")

	mock.ExpectQuery(`SELECT \* FROM "staff_accounts" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "full_name", "email", "password", "role"}).
			AddRow(uuid.New(), "Hari Adhikari", "hari@zoomcreatives.jp", hash, "admin"))

	_, err := Authenticate(db, "hari@zoomcreatives.jp", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmailIsUniform(t *testing.T) {
	db, mock := newMockDB(t)

	empty := func(table string) {
		mock.ExpectQuery(`SELECT \* FROM "` + table + `" WHERE email =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}
	empty("staff_accounts")
	empty("clients")
	empty("super_admins")

	_, err := Authenticate(db, "nobody@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown email must produce the same error as a wrong password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateFallsThroughToClientStore(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	hash := mustHash(t, "zoom")

	mock.ExpectQuery(`SELECT \* FROM "staff_accounts" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "password", "phone"}).
			AddRow(id, "Sita Thapa", "sita@example.com", hash, "090-3333-4444"))

	acct, err := Authenticate(db, "sita@example.com", "zoom")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleClient, acct.Role)
	assert.Equal(t, KindClient, acct.Kind)
	assert.Equal(t, "Sita Thapa", acct.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateSuperAdminLast(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	hash := mustHash(t, "root-pw")

	mock.ExpectQuery(`SELECT \* FROM "staff_accounts" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "super_admins" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "password"}).
			AddRow(id, "", "boss@zoomcreatives.jp", hash))

	acct, err := Authenticate(db, "boss@zoomcreatives.jp", "root-pw")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleSuperAdmin, acct.Role)
	assert.Equal(t, KindSuperAdmin, acct.Kind)
	assert.Equal(t, "boss@zoomcreatives.jp", acct.DisplayName, "display name falls back to email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := mustHash(t, "zoom")
	assert.True(t, CheckPassword(hash, "zoom"))
	assert.False(t, CheckPassword(hash, "Zoom"))
}
