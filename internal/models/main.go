// Package models defines the core data structures for menu items and admins.
package models

// Category identifies one of the fixed menu sections.
type Category string

const (
	// CategoryAppetizers represents starters and small plates.
	CategoryAppetizers Category = "appetizers"
	// CategoryMainCourses represents main dishes.
	CategoryMainCourses Category = "main-courses"
	// CategoryDesserts represents desserts.
	CategoryDesserts Category = "desserts"
	// CategoryDrinks represents beverages.
	CategoryDrinks Category = "drinks"
	// CategorySpecials represents rotating chef specials.
	CategorySpecials Category = "specials"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryAppetizers,
		CategoryMainCourses,
		CategoryDesserts,
		CategoryDrinks,
		CategorySpecials,
	}
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// DietaryInfo holds the three independent dietary flags of a menu item.
// A zero value means no dietary claims.
type DietaryInfo struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
}

// MenuItem is a catalog record as served by the API.
// The identifier is assigned by the server, never by a client.
type MenuItem struct {
	// ID is the unique identifier for the menu item.
	ID string `json:"_id"`
	// Name is the customer-facing dish name.
	Name string `json:"name"`
	// Description is the customer-facing dish description.
	Description string `json:"description"`
	// Price is the price in the restaurant's single currency unit.
	Price float64 `json:"price"`
	// Category places the item in one of the fixed menu sections.
	Category string `json:"category"`
	// Image is the relative path of the stored image asset; empty means no image.
	Image string `json:"image,omitempty"`
	// Ingredients lists free-text ingredient tokens in display order.
	Ingredients []string `json:"ingredients"`
	// Dietary holds the vegetarian/vegan/gluten-free flags.
	Dietary DietaryInfo `json:"dietaryInfo"`
	// IsAvailable controls customer-facing visibility; admins always see the item.
	IsAvailable bool `json:"isAvailable"`
}

// Admin represents a back-office user allowed to manage the catalog.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID string
	// Email is the login email address.
	Email string
	// PasswordHash is the bcrypt hash of the admin's password.
	PasswordHash []byte
}
