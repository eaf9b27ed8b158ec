package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	middleware "github.com/PumbaSquek/chiedimi-tutto-subito/middlewares"
	"github.com/PumbaSquek/chiedimi-tutto-subito/session"
)

type titleRequest struct {
	Title string `json:"title"`
}

type addItemRequest struct {
	DishID string `json:"dish_id"`
}

// draftView is what GET /menu renders from: the raw draft plus the grouped
// view the print layout walks.
func draftView(sess *session.Session) map[string]interface{} {
	draft := sess.Workspace.Draft
	return map[string]interface{}{
		"title":          draft.Title,
		"items":          draft.Items,
		"grouped":        draft.GroupByCategory(),
		"category_order": draft.CategoryOrder(),
	}
}

// GetMenu returns the current draft.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	writeJSON(w, http.StatusOK, true, "Menu retrieved", draftView(sess))
}

// SetTitle replaces the draft title. Free text, no validation.
func (h *Handler) SetTitle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	sess.Workspace.Draft.Title = req.Title
	writeJSON(w, http.StatusOK, true, "Title updated", draftView(sess))
}

// AddItem puts a catalog dish on the draft. Adding a dish that is already
// selected changes nothing.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	if _, ok := sess.Workspace.AddToMenu(req.DishID); !ok {
		writeJSON(w, http.StatusNotFound, false, "Dish not found in catalog", nil)
		return
	}

	writeJSON(w, http.StatusOK, true, "Dish added to menu", draftView(sess))
}

// RemoveItem drops a dish from the draft.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	params := mux.Vars(r)
	sess.Workspace.RemoveFromMenu(params["dish_id"])

	writeJSON(w, http.StatusOK, true, "Dish removed from menu", draftView(sess))
}

// SaveMenu persists the full draft for the user with upsert semantics. A
// second save while one is outstanding is refused; a failed save leaves the
// previously persisted menu unchanged and the draft in memory for a manual
// retry.
func (h *Handler) SaveMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	if !sess.BeginSave() {
		writeJSON(w, http.StatusConflict, false, "A save is already in progress", nil)
		return
	}
	defer sess.EndSave()

	snapshot := sess.Workspace.Snapshot(sess.Identity.UserID)
	if err := h.Menus.SaveMenu(r.Context(), snapshot); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, true, "Menu saved", map[string]interface{}{
		"updated_at": snapshot.Updated_at,
	})
}

// LoadMenu re-reads the stored menu into the draft, discarding unsaved
// edits. Load failures fall back to the current draft silently.
func (h *Handler) LoadMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	h.loadStoredMenu(r.Context(), sess)
	writeJSON(w, http.StatusOK, true, "Menu loaded", draftView(sess))
}
