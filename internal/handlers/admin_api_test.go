package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/auth"
	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/handlers"
	"github.com/diegoclair/slack-break-bot/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func newAdminServer(t *testing.T) (*mocks.MockAdminService, *auth.Issuer, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adminMock := mocks.NewMockAdminService(ctrl)
	issuer := auth.NewIssuer("test-jwt-secret", time.Minute)

	r := chi.NewRouter()
	r.Use(handlers.RequestID)
	r.Mount("/api/admin", handlers.NewAdminAPI(adminMock, issuer, time.UTC).Routes())
	return adminMock, issuer, r
}

func doRequest(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	var out apiResponse
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	}
	return resp, out
}

func adminToken(t *testing.T, issuer *auth.Issuer) string {
	t.Helper()
	token, _, err := issuer.GenerateToken()
	require.NoError(t, err)
	return token
}

func TestAdminAPI_Login(t *testing.T) {
	t.Run("Should issue a token for the right passcode", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().Authenticate("12345").Return(nil).Times(1)

		resp, out := doRequest(t, h, http.MethodPost, "/api/admin/login", `{"passcode":"12345"}`, "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, out.Success)
		assert.NotEmpty(t, out.RequestID)

		var login struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(out.Data, &login))
		_, err := issuer.ParseToken(login.Token)
		assert.NoError(t, err)
	})

	t.Run("Should reject a wrong passcode", func(t *testing.T) {
		adminMock, _, h := newAdminServer(t)
		adminMock.EXPECT().Authenticate("nope").Return(domain.ErrUnauthorized).Times(1)

		resp, out := doRequest(t, h, http.MethodPost, "/api/admin/login", `{"passcode":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.False(t, out.Success)
		require.NotNil(t, out.Error)
		assert.Equal(t, "unauthorized", out.Error.Code)
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		_, _, h := newAdminServer(t)

		resp, out := doRequest(t, h, http.MethodPost, "/api/admin/login", `{`, "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "bad_request", out.Error.Code)
	})
}

func TestAdminAPI_RequiresToken(t *testing.T) {
	_, _, h := newAdminServer(t)

	resp, out := doRequest(t, h, http.MethodGet, "/api/admin/bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "missing bearer token", out.Error.Message)

	resp, out = doRequest(t, h, http.MethodGet, "/api/admin/bookings", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "invalid or expired token", out.Error.Message)

	other := auth.NewIssuer("another-secret", time.Minute)
	resp, _ = doRequest(t, h, http.MethodGet, "/api/admin/bookings", "", adminToken(t, other))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminAPI_Bookings(t *testing.T) {
	adminMock, issuer, h := newAdminServer(t)
	token := adminToken(t, issuer)

	bookedAt := time.Date(2026, 3, 10, 8, 5, 0, 0, time.UTC)
	adminMock.EXPECT().Employees().Return([]entity.Employee{{
		ID:       "e1",
		Name:     "Sara",
		ShiftID:  "morning",
		DeviceID: "U1",
		Breaks: []entity.BreakReservation{
			{StartTime: entity.MustTimeOfDay("09:15"), DurationMinutes: 15},
		},
		CreatedAt: bookedAt,
	}}).Times(1)

	resp, out := doRequest(t, h, http.MethodGet, "/api/admin/bookings", "", token)
	require.Equal(t, http.StatusOK, resp.Code)

	var list []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		ShiftID string `json:"shiftId"`
		Breaks  []struct {
			Start    string `json:"start"`
			Duration int    `json:"durationMinutes"`
		} `json:"breaks"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Sara", list[0].Name)
	assert.Equal(t, "morning", list[0].ShiftID)
	require.Len(t, list[0].Breaks, 1)
	assert.Equal(t, "09:15", list[0].Breaks[0].Start)
	assert.Equal(t, 15, list[0].Breaks[0].Duration)
}

func TestAdminAPI_Delete(t *testing.T) {
	t.Run("Should delete every booking", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().DeleteAll(gomock.Any()).Return(4).Times(1)

		resp, out := doRequest(t, h, http.MethodDelete, "/api/admin/bookings", "", adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"deleted":4}`, string(out.Data))
	})

	t.Run("Should delete by name", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().DeleteByName(gomock.Any(), "Sara").Return(2).Times(1)

		resp, out := doRequest(t, h, http.MethodDelete, "/api/admin/employees/Sara", "", adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"deleted":2}`, string(out.Data))
	})

	t.Run("Should return not found for an unknown name", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().DeleteByName(gomock.Any(), "Ghost").Return(0).Times(1)

		resp, out := doRequest(t, h, http.MethodDelete, "/api/admin/employees/Ghost", "", adminToken(t, issuer))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "not_found", out.Error.Code)
	})

	t.Run("Should clear every device lock", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().ClearAllLocks(gomock.Any()).Return(3, nil).Times(1)

		resp, out := doRequest(t, h, http.MethodDelete, "/api/admin/locks", "", adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"deleted":3}`, string(out.Data))
	})

	t.Run("Should clear a device lock", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().ClearDeviceLock(gomock.Any(), "U1").Return(nil).Times(1)

		resp, _ := doRequest(t, h, http.MethodDelete, "/api/admin/locks/U1", "", adminToken(t, issuer))
		assert.Equal(t, http.StatusNoContent, resp.Code)
	})
}

func TestAdminAPI_Policy(t *testing.T) {
	t.Run("Should return the current policy", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().MaxBreaks().Return(3).Times(1)

		resp, out := doRequest(t, h, http.MethodGet, "/api/admin/policy", "", adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"maxBreaks":3,"requiredOrder":[15,30,15]}`, string(out.Data))
	})

	t.Run("Should update the policy", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().SetMaxBreaks(gomock.Any(), 5).Return(nil).Times(1)

		resp, out := doRequest(t, h, http.MethodPut, "/api/admin/policy", `{"maxBreaks":5}`, adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"maxBreaks":5,"requiredOrder":[15,30,15,30,15]}`, string(out.Data))
	})

	t.Run("Should reject an out of range policy", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().SetMaxBreaks(gomock.Any(), 0).Return(domain.ErrInvalidPolicy).Times(1)

		resp, out := doRequest(t, h, http.MethodPut, "/api/admin/policy", `{"maxBreaks":0}`, adminToken(t, issuer))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Equal(t, "invalid_policy", out.Error.Code)
	})
}

func TestAdminAPI_Export(t *testing.T) {
	t.Run("Should default to csv", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().Export("csv", gomock.Any()).Return(&contract.ExportFile{
			Name:        "bookings-2026-03-10.csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte("Employee,Shift\n"),
		}, nil).Times(1)

		resp, _ := doRequest(t, h, http.MethodGet, "/api/admin/export", "", adminToken(t, issuer))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="bookings-2026-03-10.csv"`, resp.Header().Get("Content-Disposition"))
		assert.Equal(t, "Employee,Shift\n", resp.Body.String())
	})

	t.Run("Should reject an unknown format", func(t *testing.T) {
		adminMock, issuer, h := newAdminServer(t)
		adminMock.EXPECT().Export("doc", gomock.Any()).Return(nil, domain.ErrParse).Times(1)

		resp, out := doRequest(t, h, http.MethodGet, "/api/admin/export?format=doc", "", adminToken(t, issuer))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "bad_request", out.Error.Code)
	})
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	var seen string
	h := handlers.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = handlers.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", resp.Header().Get("X-Request-ID"))
}
