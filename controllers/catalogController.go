package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	middleware "github.com/PumbaSquek/chiedimi-tutto-subito/middlewares"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

var validate = validator.New()

// dishRequest carries the editable dish fields. Name and price must be
// non-empty before the form may save; both stay free text otherwise.
type dishRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
}

func dishFromRequest(req dishRequest) models.MenuItem {
	return models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

// GetCatalog returns the session's categories with their dishes.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	writeJSON(w, http.StatusOK, true, "Catalog retrieved", sess.Workspace.Catalog.Categories)
}

// CreateDish adds a dish to a category. An unknown category id is treated
// as a no-op per the editor contract, reported as not found here.
func (h *Handler) CreateDish(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	params := mux.Vars(r)
	categoryID := params["category_id"]

	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Dish name and price are required", nil)
		return
	}

	dish, ok := sess.Workspace.AddDish(categoryID, dishFromRequest(req))
	if !ok {
		writeJSON(w, http.StatusNotFound, false, "Category not found", nil)
		return
	}

	writeJSON(w, http.StatusCreated, true, "Dish created", dish)
}

// UpdateDish edits a dish in place; when the dish is also on the draft, the
// draft's copy is updated in the same step.
func (h *Handler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	params := mux.Vars(r)
	dishID := params["dish_id"]

	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "Dish name and price are required", nil)
		return
	}

	dish, ok := sess.Workspace.EditDish(dishID, dishFromRequest(req))
	if !ok {
		writeJSON(w, http.StatusNotFound, false, "Dish not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, true, "Dish updated", dish)
}

// DeleteDish removes a dish from its category and from the draft.
func (h *Handler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, false, "Not signed in", nil)
		return
	}

	params := mux.Vars(r)
	if !sess.Workspace.DeleteDish(params["category_id"], params["dish_id"]) {
		writeJSON(w, http.StatusNotFound, false, "Dish not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, true, "Dish deleted", nil)
}
