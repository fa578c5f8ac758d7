package handlers_test

import (
	"net/http"
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/api/v1/handlers"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils/test_utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAdminApp(t *testing.T) (*fiber.App, *mocks.MockUserService) {
	app := fiber.New()
	svc := mocks.NewMockUserService(t)
	h := handlers.NewAdminHandler(svc)

	adm := app.Group("/api/v1/admin", test_utils.MockJWTMiddleware("admin-01", "admin@wisata.local", "admin"))
	adm.Get("/users", h.GetAllUsers)
	adm.Post("/users", h.CreateUser)
	adm.Patch("/users/:uid/role", h.ChangeRole)
	adm.Patch("/users/:uid/status", h.ChangeStatus)
	adm.Patch("/users/:uid/destinations", h.AssignDestinations)
	return app, svc
}

func TestAdminHandler_GetAllUsers(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		limit        int
		offset       int
		total        int
		expectedPage float64
	}{
		{name: "Default Pagination", query: "", limit: 20, offset: 0, total: 2, expectedPage: 1},
		{name: "Custom Pagination", query: "?page=2&limit=5", limit: 5, offset: 5, total: 6, expectedPage: 2},
		{name: "Limit Capped", query: "?limit=500", limit: 100, offset: 0, total: 1, expectedPage: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, svc := setupAdminApp(t)
			svc.On("ListUsers", mock.Anything, tc.limit, tc.offset).Return([]models.User{
				{UID: "u1", Name: "Admin", Role: models.RoleAdmin, Status: models.StatusAktif, AssignedDestinations: []string{}},
			}, tc.total, nil).Once()

			status, body := doJSON(t, app, http.MethodGet, "/api/v1/admin/users"+tc.query, nil)

			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "Daftar pengguna berhasil dimuat", body["message"])
			meta := body["meta"].(map[string]interface{})
			assert.Equal(t, tc.expectedPage, meta["current_page"])
			assert.Equal(t, float64(tc.limit), meta["per_page"])
		})
	}
}

func TestAdminHandler_CreateUser(t *testing.T) {
	input := models.CreateUserInput{Name: "Budi Santoso", Email: "budi@wisata.local", Role: models.RolePengelola}

	t.Run("Success With Temporary Password", func(t *testing.T) {
		app, svc := setupAdminApp(t)
		svc.On("CreateUser", mock.Anything, &input).Return(&models.CreateUserResult{
			User:              &models.User{UID: "new-uid", Email: input.Email, Role: models.RolePengelola, Status: models.StatusAktif},
			TemporaryPassword: "Xy7-temp-pass",
		}, nil).Once()

		status, body := doJSON(t, app, http.MethodPost, "/api/v1/admin/users", input)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Xy7-temp-pass", body["data"].(map[string]interface{})["temporary_password"])
	})

	t.Run("Email Taken", func(t *testing.T) {
		app, svc := setupAdminApp(t)
		svc.On("CreateUser", mock.Anything, &input).Return(nil, apperrors.Conflict("users.create", "email sudah terdaftar")).Once()

		status, _ := doJSON(t, app, http.MethodPost, "/api/v1/admin/users", input)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		app, _ := setupAdminApp(t)
		bad := map[string]interface{}{"name": "Budi Santoso", "email": "budi@wisata.local", "role": "superuser"}

		status, body := doJSON(t, app, http.MethodPost, "/api/v1/admin/users", bad)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["data"], "Role")
	})
}

func TestAdminHandler_ChangeRole(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, svc := setupAdminApp(t)
		svc.On("ChangeRole", mock.Anything, "admin-01", "pengelola-02", models.RoleAdmin).Return(nil).Once()

		status, body := doJSON(t, app, http.MethodPatch, "/api/v1/admin/users/pengelola-02/role", models.UpdateRoleInput{Role: models.RoleAdmin})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Peran pengguna berhasil diubah", body["message"])
	})

	t.Run("Self Demote Rejected", func(t *testing.T) {
		app, svc := setupAdminApp(t)
		svc.On("ChangeRole", mock.Anything, "admin-01", "admin-01", models.RolePengelola).
			Return(apperrors.Validation("users.change_role", "tidak dapat menurunkan peran akun sendiri")).Once()

		status, _ := doJSON(t, app, http.MethodPatch, "/api/v1/admin/users/admin-01/role", models.UpdateRoleInput{Role: models.RolePengelola})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestAdminHandler_ChangeStatusAndAssign(t *testing.T) {
	app, svc := setupAdminApp(t)
	svc.On("ChangeStatus", mock.Anything, "admin-01", "pengelola-02", models.StatusNonaktif).Return(nil).Once()
	svc.On("AssignDestinations", mock.Anything, "pengelola-02", []string{"goa-jatijajar", "pantai-menganti"}).Return(nil).Once()

	status, _ := doJSON(t, app, http.MethodPatch, "/api/v1/admin/users/pengelola-02/status", models.UpdateStatusInput{Status: models.StatusNonaktif})
	assert.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPatch, "/api/v1/admin/users/pengelola-02/destinations",
		models.AssignDestinationsInput{DestinationIDs: []string{"goa-jatijajar", "pantai-menganti"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Destinasi berhasil ditugaskan", body["message"])
}
