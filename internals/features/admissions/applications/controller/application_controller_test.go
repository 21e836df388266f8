package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"admissions_backend/internals/constants"
)

func newMockedController(t *testing.T) (*ApplicationController, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewApplicationController(gdb), mock
}

func asUser(userID uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		return c.Next()
	}
}

func bodyOf(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func applicationRow(appID, ownerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "program", "status", "documents",
		"full_name", "email", "phone", "submitted_at",
	}).AddRow(
		appID.String(), ownerID.String(), "P1", "submitted", []byte("[]"),
		"A", "a@x.com", "123", time.Now().UTC(),
	)
}

func TestSubmitDuplicateApplication(t *testing.T) {
	ctl, mock := newMockedController(t)
	callerID := uuid.New()

	app := fiber.New()
	app.Post("/api/applications", asUser(callerID, constants.RoleStudent), ctl.Submit)

	// pre-check finds an existing row; no INSERT may follow
	mock.ExpectQuery(`SELECT (.+) FROM "applications" WHERE user_id = \$1 AND program = \$2`).
		WillReturnRows(applicationRow(uuid.New(), callerID))

	payload := `{"program":"P1","fullName":"A","email":"a@x.com","phone":"123"}`
	req := httptest.NewRequest("POST", "/api/applications", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := bodyOf(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "You have already applied to this program", body["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitFirstApplication(t *testing.T) {
	ctl, mock := newMockedController(t)
	callerID := uuid.New()

	app := fiber.New()
	app.Post("/api/applications", asUser(callerID, constants.RoleStudent), ctl.Submit)

	mock.ExpectQuery(`SELECT (.+) FROM "applications" WHERE user_id = \$1 AND program = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	payload := `{"program":"P1","fullName":"A","email":"a@x.com","phone":"123"}`
	req := httptest.NewRequest("POST", "/api/applications", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := bodyOf(t, resp.Body)
	assert.Equal(t, true, body["success"])
	require.Contains(t, body, "application")
	created := body["application"].(map[string]any)
	assert.Equal(t, "submitted", created["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApplicationOwnership(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	appID := uuid.New()

	expectLoad := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`SELECT (.+) FROM "applications" WHERE id = \$1`).
			WillReturnRows(applicationRow(appID, ownerID))
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
				AddRow(ownerID.String(), "A", "a@x.com", constants.RoleStudent))
	}

	t.Run("foreign student fetch is forbidden", func(t *testing.T) {
		ctl, mock := newMockedController(t)
		app := fiber.New()
		app.Get("/api/applications/:id", asUser(strangerID, constants.RoleStudent), ctl.Get)
		expectLoad(mock)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/applications/"+appID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		body := bodyOf(t, resp.Body)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "You do not have permission to view this application", body["message"])
	})

	t.Run("own fetch succeeds", func(t *testing.T) {
		ctl, mock := newMockedController(t)
		app := fiber.New()
		app.Get("/api/applications/:id", asUser(ownerID, constants.RoleStudent), ctl.Get)
		expectLoad(mock)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/applications/"+appID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := bodyOf(t, resp.Body)
		require.Contains(t, body, "application")
		got := body["application"].(map[string]any)
		assert.Equal(t, ownerID.String(), got["userId"])
	})

	t.Run("admin fetches any application", func(t *testing.T) {
		ctl, mock := newMockedController(t)
		app := fiber.New()
		app.Get("/api/applications/:id", asUser(strangerID, constants.RoleAdmin), ctl.Get)
		expectLoad(mock)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/applications/"+appID.String(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
