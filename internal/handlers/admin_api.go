package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/auth"
	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type AdminAPI struct {
	admin  contract.AdminService
	tokens *auth.Issuer
	loc    *time.Location
}

func NewAdminAPI(admin contract.AdminService, tokens *auth.Issuer, loc *time.Location) *AdminAPI {
	if loc == nil {
		loc = time.Local
	}
	return &AdminAPI{admin: admin, tokens: tokens, loc: loc}
}

// Routes is mounted under /api/admin
func (a *AdminAPI) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", a.login)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(a.tokens))
		r.Get("/bookings", a.listBookings)
		r.Delete("/bookings", a.deleteAll)
		r.Delete("/employees/{name}", a.deleteEmployee)
		r.Delete("/locks", a.clearAllLocks)
		r.Delete("/locks/{device}", a.clearLock)
		r.Get("/policy", a.getPolicy)
		r.Put("/policy", a.putPolicy)
		r.Get("/export", a.export)
	})
	return r
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type policyBody struct {
	MaxBreaks     int   `json:"maxBreaks"`
	RequiredOrder []int `json:"requiredOrder,omitempty"`
}

type breakBody struct {
	Start    string `json:"start"`
	Duration int    `json:"durationMinutes"`
}

type bookingBody struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	ShiftID  string      `json:"shiftId"`
	DeviceID string      `json:"deviceId"`
	Breaks   []breakBody `json:"breaks"`
	BookedAt time.Time   `json:"bookedAt"`
}

type countBody struct {
	Deleted int `json:"deleted"`
}

func (a *AdminAPI) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return
	}
	if err := a.admin.Authenticate(req.Passcode); err != nil {
		fail(w, r, http.StatusUnauthorized, "unauthorized", "wrong passcode")
		return
	}

	token, expires, err := a.tokens.GenerateToken()
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "internal", "could not issue token")
		return
	}
	success(w, r, loginResponse{Token: token, ExpiresAt: expires})
}

func (a *AdminAPI) listBookings(w http.ResponseWriter, r *http.Request) {
	employees := a.admin.Employees()
	out := make([]bookingBody, 0, len(employees))
	for _, e := range employees {
		out = append(out, toBookingBody(e))
	}
	success(w, r, out)
}

func (a *AdminAPI) deleteAll(w http.ResponseWriter, r *http.Request) {
	success(w, r, countBody{Deleted: a.admin.DeleteAll(r.Context())})
}

func (a *AdminAPI) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	n := a.admin.DeleteByName(r.Context(), name)
	if n == 0 {
		fail(w, r, http.StatusNotFound, "not_found", fmt.Sprintf("no bookings for %s", name))
		return
	}
	success(w, r, countBody{Deleted: n})
}

func (a *AdminAPI) clearLock(w http.ResponseWriter, r *http.Request) {
	if err := a.admin.ClearDeviceLock(r.Context(), chi.URLParam(r, "device")); err != nil {
		fail(w, r, http.StatusInternalServerError, "internal", "could not clear lock")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *AdminAPI) clearAllLocks(w http.ResponseWriter, r *http.Request) {
	n, err := a.admin.ClearAllLocks(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "internal", "could not clear locks")
		return
	}
	success(w, r, countBody{Deleted: n})
}

func (a *AdminAPI) getPolicy(w http.ResponseWriter, r *http.Request) {
	p := entity.Policy{MaxBreaks: a.admin.MaxBreaks()}
	success(w, r, policyBody{MaxBreaks: p.MaxBreaks, RequiredOrder: p.RequiredOrder()})
}

func (a *AdminAPI) putPolicy(w http.ResponseWriter, r *http.Request) {
	var req policyBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", "invalid json body")
		return
	}

	if err := a.admin.SetMaxBreaks(r.Context(), req.MaxBreaks); err != nil {
		if errors.Is(err, domain.ErrInvalidPolicy) {
			fail(w, r, http.StatusUnprocessableEntity, "invalid_policy",
				fmt.Sprintf("maxBreaks must be between %d and %d", domain.MinBreaksPerShift, domain.MaxBreaksPerShift))
			return
		}
		fail(w, r, http.StatusInternalServerError, "internal", "could not save policy")
		return
	}

	p := entity.Policy{MaxBreaks: req.MaxBreaks}
	success(w, r, policyBody{MaxBreaks: p.MaxBreaks, RequiredOrder: p.RequiredOrder()})
}

func (a *AdminAPI) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	file, err := a.admin.Export(format, time.Now().In(a.loc))
	if err != nil {
		fail(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}

func toBookingBody(e entity.Employee) bookingBody {
	breaks := make([]breakBody, len(e.Breaks))
	for i, b := range e.Breaks {
		breaks[i] = breakBody{Start: b.StartTime.String(), Duration: b.DurationMinutes}
	}
	return bookingBody{
		ID:       e.ID,
		Name:     e.Name,
		ShiftID:  e.ShiftID,
		DeviceID: e.DeviceID,
		Breaks:   breaks,
		BookedAt: e.CreatedAt,
	}
}
