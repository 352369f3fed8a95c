// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"errors"
	"net/http"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/system/apierr"
	"github.com/dalemusser/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"github.com/dalemusser/schoolhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/schoolhub/internal/app/system/respond"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// announcementInput carries the caller-supplied fields shared by create and
// update. All fields ride the query string; dates stay strings on the wire
// and are parsed only for validation and comparison.
type announcementInput struct {
	Message        string
	ExpirationDate string
	StartDate      string
}

func readInput(r *http.Request) announcementInput {
	return announcementInput{
		Message:        query.Get(r, "message"),
		ExpirationDate: query.Get(r, "expiration_date"),
		StartDate:      query.Get(r, "start_date"),
	}
}

// validate enforces exact YYYY-MM-DD dates. The expiration date is always
// required; the start date is checked only when present.
func (in announcementInput) validate() error {
	if !dates.Valid(in.ExpirationDate) {
		return apierr.InvalidDate("expiration_date")
	}
	if in.StartDate != "" && !dates.Valid(in.StartDate) {
		return apierr.InvalidDate("start_date")
	}
	return nil
}

// cleanMessage strips unsafe markup from messages that carry HTML. Plain
// text passes through untouched so ordinary announcements are stored exactly
// as typed.
func cleanMessage(s string) string {
	if htmlsanitize.IsPlainText(s) {
		return s
	}
	return htmlsanitize.Sanitize(s)
}

// authorize checks the caller-supplied username and writes the 401 response
// itself when the check fails. It returns the username and whether the
// request may proceed.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := query.Get(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Auth.Authorize(ctx, username); err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			respond.Error(w, apierr.ErrUnauthorized)
			return "", false
		}
		h.Log.Error("authorization lookup failed", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, err)
		return "", false
	}
	return username, true
}

// ListActive returns the announcements currently visible: expiration today
// or later, and start date (when present) today or earlier. No auth; this
// is the student-facing list.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	active, err := h.Store.Active(ctx, dates.Today())
	if err != nil {
		h.Log.Error("failed to list active announcements", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, err)
		return
	}
	if active == nil {
		active = []models.Announcement{}
	}
	respond.JSON(w, http.StatusOK, active)
}

// ListAll returns every announcement, newest expiration first, for
// management views. Requires a known teacher username.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, err)
		return
	}
	if all == nil {
		all = []models.Announcement{}
	}
	respond.JSON(w, http.StatusOK, all)
}

// Create stores a new announcement stamped with the caller's username and
// returns the stored record with its assigned ID.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorize(w, r)
	if !ok {
		return
	}

	in := readInput(r)
	if err := in.validate(); err != nil {
		respond.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Insert(ctx, models.Announcement{
		Message:        cleanMessage(in.Message),
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
		CreatedBy:      username,
	})
	if err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// Update replaces an announcement's content and returns the updated record.
// Omitting start_date removes any stored start date.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := h.authorize(w, r)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apierr.ErrInvalidID)
		return
	}

	in := readInput(r)
	if err := in.validate(); err != nil {
		respond.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, announcementstore.Update{
		Message:        cleanMessage(in.Message),
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
		UpdatedBy:      username,
	})
	if err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			respond.Error(w, apierr.ErrNotFound)
			return
		}
		h.Log.Error("failed to update announcement", zap.Error(err),
			zap.String("path", r.URL.Path), zap.String("id", id.Hex()))
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// Delete removes an announcement and returns a confirmation message.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apierr.ErrInvalidID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			respond.Error(w, apierr.ErrNotFound)
			return
		}
		h.Log.Error("failed to delete announcement", zap.Error(err),
			zap.String("path", r.URL.Path), zap.String("id", id.Hex()))
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusOK, "Announcement deleted successfully")
}
