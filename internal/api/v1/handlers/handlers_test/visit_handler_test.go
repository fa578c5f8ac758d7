package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/api/v1/handlers"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/service/mocks"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils/test_utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupVisitApp(t *testing.T, uid, role string) (*fiber.App, *mocks.MockVisitService) {
	app := fiber.New()
	svc := mocks.NewMockVisitService(t)
	h := handlers.NewVisitHandler(svc)

	api := app.Group("/api/v1", test_utils.MockJWTMiddleware(uid, uid+"@wisata.local", role))
	api.Get("/destinations/:destId/visits", h.ListVisits)
	api.Get("/destinations/:destId/visits/:year/:month", h.GetVisit)
	api.Put("/destinations/:destId/visits/:year/:month", h.UpdateVisit)
	api.Patch("/admin/destinations/:destId/visits/:year/:month/lock", h.SetLock)
	return app, svc
}

func TestVisitHandler_ListVisits(t *testing.T) {
	t.Run("Explicit Year", func(t *testing.T) {
		app, svc := setupVisitApp(t, "pengelola-01", "pengelola")
		svc.On("ListByDestination", mock.Anything, "pengelola-01", "goa-jatijajar", 2023).
			Return([]models.VisitData{{ID: "goa-jatijajar-2023-1"}, {ID: "goa-jatijajar-2023-2"}}, nil).Once()

		status, body := doJSON(t, app, http.MethodGet, "/api/v1/destinations/goa-jatijajar/visits?year=2023", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 2)
	})

	t.Run("Defaults To Current Year", func(t *testing.T) {
		app, svc := setupVisitApp(t, "pengelola-01", "pengelola")
		svc.On("ListByDestination", mock.Anything, "pengelola-01", "goa-jatijajar", time.Now().Year()).
			Return([]models.VisitData{}, nil).Once()

		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/destinations/goa-jatijajar/visits", nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("Outside Assignment", func(t *testing.T) {
		app, svc := setupVisitApp(t, "pengelola-01", "pengelola")
		svc.On("ListByDestination", mock.Anything, "pengelola-01", "pantai-menganti", 2024).
			Return(nil, apperrors.Authorization("visits.list", "destinasi tidak termasuk dalam tugas Anda")).Once()

		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/destinations/pantai-menganti/visits?year=2024", nil)
		assert.Equal(t, http.StatusForbidden, status)
	})
}

func TestVisitHandler_GetVisit_InvalidPeriod(t *testing.T) {
	app, _ := setupVisitApp(t, "admin-01", "admin")

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/destinations/goa-jatijajar/visits/2024/mei", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Tahun atau bulan tidak valid", body["message"])
}

func TestVisitHandler_UpdateVisit(t *testing.T) {
	input := models.UpdateVisitInput{
		Wisnus: 1200,
		Wisman: 30,
		WismanDetails: []models.WismanDetail{
			{Country: "Malaysia", Count: 20},
			{Country: "Belanda", Count: 10},
		},
		EventVisitors: 50,
	}

	t.Run("Success", func(t *testing.T) {
		app, svc := setupVisitApp(t, "pengelola-01", "pengelola")
		svc.On("Update", mock.Anything, "pengelola-01", "goa-jatijajar", 2024, 5, &input).
			Return(func(_ context.Context, _ string, dest string, y, m int, in *models.UpdateVisitInput) *models.VisitData {
				v := &models.VisitData{
					ID: "goa-jatijajar-2024-5", DestinationID: dest, Year: y, Month: m,
					Wisnus: in.Wisnus, Wisman: in.Wisman, WismanDetails: in.WismanDetails, EventVisitors: in.EventVisitors,
				}
				v.Recalculate()
				return v
			}, nil).Once()

		status, body := doJSON(t, app, http.MethodPut, "/api/v1/destinations/goa-jatijajar/visits/2024/5", input)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(1280), body["data"].(map[string]interface{})["total_visitors"])
	})

	t.Run("Locked Period", func(t *testing.T) {
		app, svc := setupVisitApp(t, "pengelola-01", "pengelola")
		locked := apperrors.InvalidState("visits.update", "data periode ini terkunci, ajukan permintaan buka kunci terlebih dahulu")
		svc.On("Update", mock.Anything, "pengelola-01", "goa-jatijajar", 2024, 5, &input).Return(nil, locked).Once()

		status, body := doJSON(t, app, http.MethodPut, "/api/v1/destinations/goa-jatijajar/visits/2024/5", input)
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, body["message"], "terkunci")
	})

	t.Run("Negative Count Rejected By Validator", func(t *testing.T) {
		app, _ := setupVisitApp(t, "pengelola-01", "pengelola")
		bad := models.UpdateVisitInput{Wisnus: -1}

		status, _ := doJSON(t, app, http.MethodPut, "/api/v1/destinations/goa-jatijajar/visits/2024/5", bad)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestVisitHandler_SetLock(t *testing.T) {
	app, svc := setupVisitApp(t, "admin-01", "admin")
	svc.On("SetLock", mock.Anything, "admin-01", "goa-jatijajar", 2024, 5, false).Return(nil).Once()

	unlocked := false
	status, body := doJSON(t, app, http.MethodPatch, "/api/v1/admin/destinations/goa-jatijajar/visits/2024/5/lock",
		models.SetLockInput{Locked: &unlocked})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Periode berhasil dibuka", body["message"])

	status, _ = doJSON(t, app, http.MethodPatch, "/api/v1/admin/destinations/goa-jatijajar/visits/2024/5/lock", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status, "locked is required")
}
