package controller

import (
	"encoding/json"
	"net/http"

	middleware "github.com/PumbaSquek/chiedimi-tutto-subito/middlewares"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp creates an account and an authenticated session. The fresh session
// starts from the seed catalog and an empty draft.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	identity, err := h.Gateway.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := h.Sessions.Create(*identity)
	h.loadStoredMenu(r.Context(), sess)

	writeJSON(w, http.StatusCreated, true, "Account created", identity)
}

// Login authenticates and replaces any previous session, loading the user's
// stored menu into the new draft. First-time users keep the defaults.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	identity, err := h.Gateway.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := h.Sessions.Create(*identity)
	h.loadStoredMenu(r.Context(), sess)

	writeJSON(w, http.StatusOK, true, "Signed in", identity)
}

// Logout destroys the session and clears the stored tokens. The in-memory
// draft is discarded; anything unsaved is lost.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	if err := h.Gateway.SignOut(r.Context(), &sess.Identity); err != nil {
		writeError(w, err)
		return
	}
	h.Sessions.Destroy(sess.Identity.UserID)

	writeJSON(w, http.StatusOK, true, "Signed out", nil)
}

// Me returns the current identity's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	identity, err := h.Gateway.Profile(r.Context(), sess.Identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, true, "Profile retrieved", identity)
}
