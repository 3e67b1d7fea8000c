package admin

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/oshaad/backoffice/internal/models"
)

// FillForm prompts for each editable field of the staged draft. Pressing
// enter keeps the shown value, so editing only touches what changes.
func FillForm(scanner *bufio.Scanner, form *Form) {
	form.Name = promptString(scanner, "Name", form.Name)
	form.Description = promptString(scanner, "Description", form.Description)
	form.Price = promptString(scanner, "Price", form.Price)
	form.Category = promptCategory(scanner, form.Category)
	form.Ingredients = promptString(scanner, "Ingredients (comma-separated)", form.Ingredients)
	form.Dietary.Vegetarian = promptBool(scanner, "Vegetarian", form.Dietary.Vegetarian)
	form.Dietary.Vegan = promptBool(scanner, "Vegan", form.Dietary.Vegan)
	form.Dietary.GlutenFree = promptBool(scanner, "Gluten free", form.Dietary.GlutenFree)
	form.IsAvailable = promptBool(scanner, "Available", form.IsAvailable)
	form.ImagePath = promptString(scanner, "Image file path (leave empty to keep current image)", form.ImagePath)
}

func promptString(scanner *bufio.Scanner, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	if !scanner.Scan() {
		return current
	}
	if line := strings.TrimSpace(scanner.Text()); line != "" {
		return line
	}
	return current
}

func promptBool(scanner *bufio.Scanner, label string, current bool) bool {
	def := "n"
	if current {
		def = "y"
	}
	fmt.Printf("%s (y/n) [%s]: ", label, def)
	if !scanner.Scan() {
		return current
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	default:
		return current
	}
}

func promptCategory(scanner *bufio.Scanner, current string) string {
	options := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		options = append(options, string(c))
	}
	fmt.Printf("Category (%s)\n", strings.Join(options, ", "))
	return promptString(scanner, "Category", current)
}
