// Package admin orchestrates the menu-management flow: form state,
// submission, and catalog refresh against the catalog client.
package admin

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/oshaad/backoffice/internal/client/catalog"
	"github.com/oshaad/backoffice/internal/models"
)

// ErrBusy is returned when a mutating operation is requested while another
// one is still in flight. The guard is cooperative: the server does not
// enforce it.
var ErrBusy = errors.New("another operation is in progress")

// ErrCancelled is returned when the admin declines the delete confirmation.
var ErrCancelled = errors.New("cancelled")

// CatalogAPI defines the catalog operations required by the Manager.
type CatalogAPI interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, draft catalog.Draft) (models.MenuItem, error)
	Update(ctx context.Context, id string, draft catalog.Draft) (models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// FormState identifies what the management form is currently doing.
type FormState int

const (
	// FormHidden means no form is shown.
	FormHidden FormState = iota
	// FormCreate means the form stages a brand-new item.
	FormCreate
	// FormEdit means the form stages changes to an existing item.
	FormEdit
)

// Form is the transient staging copy of one item's editable fields.
// Ingredients stay a raw comma-separated string until submit.
type Form struct {
	Name        string
	Description string
	Price       string
	Category    string
	Ingredients string
	Dietary     models.DietaryInfo
	IsAvailable bool
	// ImagePath is a local file chosen to replace the stored image;
	// editing never pre-fills it.
	ImagePath string
}

// Manager holds the admin view's state: the cached catalog, the form, and
// the last error message. All methods are meant for a single goroutine;
// the flow is event-driven, not parallel.
type Manager struct {
	client CatalogAPI

	items  []models.MenuItem
	loaded bool

	state        FormState
	form         Form
	editingID    string
	editingImage string

	busy   bool
	errMsg string
}

// NewManager creates a Manager over the given catalog client. The catalog
// starts unknown; call Refresh to load it.
func NewManager(client CatalogAPI) *Manager {
	return &Manager{client: client}
}

// Refresh re-fetches the full catalog. On success the cache is replaced in
// full; on failure the previous cache is preserved and an error message is
// recorded, since a failed list means "catalog unknown".
func (m *Manager) Refresh(ctx context.Context) error {
	items, err := m.client.List(ctx)
	if err != nil {
		m.errMsg = "Failed to load menu items. Please try again later."
		return err
	}
	m.items = items
	m.loaded = true
	m.errMsg = ""
	return nil
}

// Items returns the cached catalog.
func (m *Manager) Items() []models.MenuItem {
	return m.items
}

// Loaded reports whether the catalog has been fetched at least once.
func (m *Manager) Loaded() bool {
	return m.loaded
}

// Err returns the message to display, or an empty string.
func (m *Manager) Err() string {
	return m.errMsg
}

// State returns the current form state.
func (m *Manager) State() FormState {
	return m.state
}

// Form returns the staged draft for editing by the caller.
func (m *Manager) Form() *Form {
	return &m.form
}

// EditingImage returns the stored image of the item being edited, shown as
// a read-only reference so the admin must explicitly pick a new file.
func (m *Manager) EditingImage() string {
	return m.editingImage
}

// OpenCreate shows the form staged for a new item with empty defaults:
// first category, available, no dietary flags.
func (m *Manager) OpenCreate() {
	m.state = FormCreate
	m.editingID = ""
	m.editingImage = ""
	m.errMsg = ""
	m.form = Form{
		Category:    string(models.Categories()[0]),
		IsAvailable: true,
	}
}

// OpenEdit shows the form populated from the cached item with the given
// identifier. The ingredients sequence is joined into a comma-separated
// string for editing and the image input stays empty.
func (m *Manager) OpenEdit(id string) error {
	for _, item := range m.items {
		if item.ID != id {
			continue
		}
		m.state = FormEdit
		m.editingID = item.ID
		m.editingImage = item.Image
		m.errMsg = ""
		m.form = Form{
			Name:        item.Name,
			Description: item.Description,
			Price:       formatPrice(item.Price),
			Category:    item.Category,
			Ingredients: strings.Join(item.Ingredients, ", "),
			Dietary:     item.Dietary,
			IsAvailable: item.IsAvailable,
		}
		return nil
	}
	return errors.New("no menu item with id " + id)
}

// CloseForm hides the form and discards the draft unconditionally; there
// is no unsaved-changes guard.
func (m *Manager) CloseForm() {
	m.state = FormHidden
	m.editingID = ""
	m.editingImage = ""
	m.form = Form{}
}

// Submit validates the staged draft and sends it as a create or update,
// depending on how the form was opened. On success the draft is discarded,
// the form closes, and the catalog is re-fetched in full. On failure the
// form stays open with the entered values intact so the admin can retry.
func (m *Manager) Submit(ctx context.Context) error {
	if m.state == FormHidden {
		return errors.New("no form is open")
	}
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	defer func() { m.busy = false }()

	if err := m.requireFields(); err != nil {
		m.errMsg = err.Error()
		return err
	}

	draft := catalog.Draft{
		Name:        m.form.Name,
		Description: m.form.Description,
		Price:       m.form.Price,
		Category:    m.form.Category,
		Ingredients: ParseIngredients(m.form.Ingredients),
		Dietary:     m.form.Dietary,
		IsAvailable: m.form.IsAvailable,
		ImagePath:   m.form.ImagePath,
	}

	var err error
	if m.state == FormEdit {
		_, err = m.client.Update(ctx, m.editingID, draft)
	} else {
		_, err = m.client.Create(ctx, draft)
	}
	if err != nil {
		m.errMsg = "Failed to save item: " + saveFailureReason(err)
		return err
	}

	m.CloseForm()
	return m.Refresh(ctx)
}

// Delete asks for confirmation, removes the item, and re-fetches the
// catalog regardless of the outcome to resynchronize the cache. Nothing is
// changed speculatively, so a failure needs no rollback.
func (m *Manager) Delete(ctx context.Context, id string, confirm func(item models.MenuItem) bool) error {
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	defer func() { m.busy = false }()

	var target models.MenuItem
	found := false
	for _, item := range m.items {
		if item.ID == id {
			target = item
			found = true
			break
		}
	}
	if !found {
		return errors.New("no menu item with id " + id)
	}
	if !confirm(target) {
		return ErrCancelled
	}

	deleteErr := m.client.Delete(ctx, id)

	// Resynchronize even after a failed delete; the server state is
	// authoritative either way.
	refreshErr := m.Refresh(ctx)

	if deleteErr != nil {
		m.errMsg = "Failed to delete item. Please try again."
		return deleteErr
	}
	return refreshErr
}

// requireFields mirrors the form's native required-field check: name,
// description, price, and category must all be non-empty.
func (m *Manager) requireFields() error {
	switch {
	case strings.TrimSpace(m.form.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(m.form.Description) == "":
		return errors.New("description is required")
	case strings.TrimSpace(m.form.Price) == "":
		return errors.New("price is required")
	case strings.TrimSpace(m.form.Category) == "":
		return errors.New("category is required")
	}
	return nil
}

// ParseIngredients splits a comma-separated ingredients string into
// tokens, trimming whitespace and dropping empty entries while preserving
// order.
func ParseIngredients(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// saveFailureReason picks the message shown after a failed submit: the
// server's own words where it sent any, a generic hint otherwise.
func saveFailureReason(err error) string {
	var (
		validation *catalog.ValidationError
		auth       *catalog.AuthError
		notFound   *catalog.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &auth):
		return auth.Message
	case errors.As(err, &notFound):
		return notFound.Message
	default:
		return "Please check inputs and try again."
	}
}

// formatPrice renders a stored price back into the editable text field.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
