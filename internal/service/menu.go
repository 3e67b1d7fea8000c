// Package service provides the business logic for the menu catalog and
// admin authentication, delegating persistence to repositories.
package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/oshaad/backoffice/internal/models"
)

// ErrNotFound is returned when a menu item with the requested ID does not exist.
var ErrNotFound = errors.New("menu item not found")

// InvalidInputError reports a rejected menu item payload. The reason is
// returned verbatim to the client.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// ImageUpload is a new image attached to a create or update request.
type ImageUpload struct {
	// Filename is the client-supplied name, used only for its extension.
	Filename string
	// Data is the image payload.
	Data io.Reader
}

// MenuItemInput is the complete editable field set of a menu item.
// Create and update both take the full set: mutations are whole-record
// replacements, never patches.
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Ingredients []string
	Dietary     models.DietaryInfo
	IsAvailable bool
	// Image, when non-nil, replaces the stored image. When nil an update
	// keeps the existing image and a create stores the item without one.
	Image *ImageUpload
}

// MenuRepository defines the persistence operations required by MenuService.
type MenuRepository interface {
	// List fetches the full catalog, including unavailable items.
	List(ctx context.Context) ([]models.MenuItem, error)
	// GetByID fetches one item; sql.ErrNoRows when the ID is unknown.
	GetByID(ctx context.Context, id string) (models.MenuItem, error)
	// Insert stores a new item with a caller-assigned ID.
	Insert(ctx context.Context, item models.MenuItem) error
	// Update replaces all fields of an item; sql.ErrNoRows when the ID is unknown.
	Update(ctx context.Context, item models.MenuItem) error
	// Delete removes an item; sql.ErrNoRows when the ID is unknown.
	Delete(ctx context.Context, id string) error
}

// ImageStore persists uploaded image payloads and returns the public
// relative path under which the stored file is served.
type ImageStore interface {
	Save(filename string, data io.Reader) (string, error)
}

// MenuService implements menu catalog operations by delegating to a
// MenuRepository and an ImageStore.
type MenuService struct {
	repo   MenuRepository
	images ImageStore
}

// NewMenuService constructs a new MenuService using the provided repository
// and image store.
func NewMenuService(repo MenuRepository, images ImageStore) *MenuService {
	return &MenuService{repo: repo, images: images}
}

// List returns the full catalog, including unavailable items.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.List(ctx)
}

// Create validates the input, stores the image if one was attached, and
// persists a new menu item with a server-assigned identifier.
func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (models.MenuItem, error) {
	if err := validateInput(&in); err != nil {
		return models.MenuItem{}, err
	}

	image := ""
	if in.Image != nil {
		path, err := s.images.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return models.MenuItem{}, err
		}
		image = path
	}

	item := buildItem(uuid.NewString(), image, in)
	if err := s.repo.Insert(ctx, item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Update validates the input and replaces every editable field of an
// existing item. Without a new image the stored image is kept; the admin
// must explicitly attach a file to replace it.
func (s *MenuService) Update(ctx context.Context, id string, in MenuItemInput) (models.MenuItem, error) {
	if err := validateInput(&in); err != nil {
		return models.MenuItem{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, err
	}

	image := existing.Image
	if in.Image != nil {
		path, err := s.images.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return models.MenuItem{}, err
		}
		image = path
	}

	item := buildItem(id, image, in)
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

// Delete removes a menu item by ID.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// validateInput normalizes and checks the editable fields. Reasons are
// phrased for the admin form's error banner.
func validateInput(in *MenuItemInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return &InvalidInputError{Reason: "name is required"}
	}
	if in.Description == "" {
		return &InvalidInputError{Reason: "description is required"}
	}
	if in.Price < 0 {
		return &InvalidInputError{Reason: "price must be a non-negative number"}
	}
	if !models.ValidCategory(in.Category) {
		return &InvalidInputError{Reason: "unknown category " + strconv.Quote(in.Category)}
	}
	if in.Ingredients == nil {
		in.Ingredients = []string{}
	}
	return nil
}

func buildItem(id, image string, in MenuItemInput) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       image,
		Ingredients: in.Ingredients,
		Dietary:     in.Dietary,
		IsAvailable: in.IsAvailable,
	}
}
