package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oshaad/backoffice/internal/models"
	"github.com/oshaad/backoffice/internal/service"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger image payloads spill to temp files.
const maxUploadMemory = 32 << 20

// MenuService defines the interface for catalog operations required by the
// MenuHandler.
type MenuService interface {
	// List returns the full catalog, including unavailable items.
	List(ctx context.Context) ([]models.MenuItem, error)
	// Create persists a new item from the complete editable field set.
	Create(ctx context.Context, in service.MenuItemInput) (models.MenuItem, error)
	// Update replaces every editable field of an existing item.
	Update(ctx context.Context, id string, in service.MenuItemInput) (models.MenuItem, error)
	// Delete removes an item by ID.
	Delete(ctx context.Context, id string) error
}

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	// MenuService performs the underlying catalog operations.
	MenuService MenuService
}

// List handles GET /api/menu requests. The endpoint is public and returns
// the catalog as a bare JSON array, unavailable items included.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.MenuService.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/menu requests. The body is multipart form data
// with the complete editable field set; "ingredients" and "dietaryInfo" are
// JSON-encoded strings and "image" is an optional binary part.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := parseMenuItemForm(r)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	defer cleanup()

	item, err := h.MenuService.Create(r.Context(), in)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu/{id} requests with the same body shape as
// Create. Every editable field is replaced; this is not a patch.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	in, cleanup, err := parseMenuItemForm(r)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	defer cleanup()

	item, err := h.MenuService.Update(r.Context(), id, in)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu/{id} requests. A successful delete
// returns 204 with no body.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.MenuService.Delete(r.Context(), id); err != nil {
		writeMenuError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseMenuItemForm decodes the multipart body into a MenuItemInput.
// The returned cleanup closes the uploaded file, if any, and must be called
// after the service is done reading it.
func parseMenuItemForm(r *http.Request) (service.MenuItemInput, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "invalid multipart body"}
	}

	var in service.MenuItemInput
	in.Name = r.FormValue("name")
	in.Description = r.FormValue("description")
	in.Category = r.FormValue("category")

	rawPrice := strings.TrimSpace(r.FormValue("price"))
	if rawPrice == "" {
		return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "price is required"}
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "price must be a number"}
	}
	in.Price = price

	if raw := r.FormValue("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Ingredients); err != nil {
			return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "ingredients must be a JSON array of strings"}
		}
	}

	if raw := r.FormValue("dietaryInfo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Dietary); err != nil {
			return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "dietaryInfo must be a JSON object"}
		}
	}

	// Availability defaults to true when the field is absent.
	in.IsAvailable = true
	if raw := r.FormValue("isAvailable"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "isAvailable must be a boolean"}
		}
		in.IsAvailable = available
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		in.Image = &service.ImageUpload{Filename: header.Filename, Data: file}
		return in, func() { _ = file.Close() }, nil
	case errors.Is(err, http.ErrMissingFile):
		return in, noop, nil
	default:
		return service.MenuItemInput{}, noop, &service.InvalidInputError{Reason: "invalid image upload"}
	}
}

// writeMenuError translates service errors into HTTP responses.
func writeMenuError(w http.ResponseWriter, err error) {
	var invalid *service.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		writeMessage(w, http.StatusBadRequest, invalid.Reason)
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "menu item not found")
	default:
		writeMessage(w, http.StatusInternalServerError, "unexpected error")
	}
}
