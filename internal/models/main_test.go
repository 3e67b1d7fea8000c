package models

import "testing"

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(string(c)) {
			t.Errorf("expected %q to be a valid category", c)
		}
	}

	for _, s := range []string{"", "Appetizers", "main courses", "sides"} {
		if ValidCategory(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCategories_FirstIsAppetizers(t *testing.T) {
	// The admin form defaults new drafts to the first category.
	if got := Categories()[0]; got != CategoryAppetizers {
		t.Errorf("expected first category to be appetizers, got %q", got)
	}
}
