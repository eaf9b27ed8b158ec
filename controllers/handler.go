package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/auth"
	"github.com/PumbaSquek/chiedimi-tutto-subito/session"
	"github.com/PumbaSquek/chiedimi-tutto-subito/storage"
)

// Handler carries the dependencies every controller needs. Everything is
// injected; there is no package-level state.
type Handler struct {
	Gateway  auth.Gateway
	Menus    storage.MenuStore
	Sessions *session.Manager
}

func NewHandler(gateway auth.Gateway, menus storage.MenuStore, sessions *session.Manager) *Handler {
	return &Handler{Gateway: gateway, Menus: menus, Sessions: sessions}
}

// ResolveSession returns the live session for the user, rebuilding it from
// the store when the server no longer holds one (restart, expired cache).
// The rebuilt session refreshes the display name via a profile lookup and
// reloads the stored menu.
func (h *Handler) ResolveSession(ctx context.Context, userID string) (*session.Session, error) {
	if sess, ok := h.Sessions.Get(userID); ok {
		return sess, nil
	}

	identity, err := h.Gateway.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess := h.Sessions.Create(*identity)
	h.loadStoredMenu(ctx, sess)
	return sess, nil
}

// loadStoredMenu pulls the user's saved menu into the session draft. A
// missing record is the normal first-run case; any other failure is logged
// and swallowed, leaving the draft at its defaults.
func (h *Handler) loadStoredMenu(ctx context.Context, sess *session.Session) {
	stored, err := h.Menus.LoadMenu(ctx, sess.Identity.UserID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.Printf("load menu for %s: %v", sess.Identity.UserID, err)
		}
		return
	}
	sess.Workspace.RestoreDraft(stored)
}

func writeJSON(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{
		"success": success,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	json.NewEncoder(w).Encode(body)
}

// writeError maps an error kind to a status code and the standard envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, false, err.Error(), nil)
}
