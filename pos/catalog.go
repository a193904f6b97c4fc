package pos

import (
	"strings"

	"github.com/nanthakishoreraja/smsystems/models"
)

// AddCategory appends a new category. The name must be non-empty after
// trimming and unique among categories, compared case-insensitively.
func (s *Session) AddCategory(name string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &ValidationError{"category name cannot be empty"}
	}
	if s.categoryNameTaken(name, "") {
		return models.Category{}, &ValidationError{"a category with this name already exists"}
	}

	cat := models.Category{ID: newID(), Name: name}
	s.categories = append(s.categories, cat)
	s.persistCategories()
	return cat, nil
}

// RenameCategory changes a category's name in place. Unknown ids are a
// silent no-op; empty or duplicate names are validation failures.
func (s *Session) RenameCategory(id, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{"category name cannot be empty"}
	}
	if s.categoryNameTaken(newName, id) {
		return &ValidationError{"a category with this name already exists"}
	}

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = newName
			s.persistCategories()
			return nil
		}
	}
	return nil
}

// DeleteCategory removes a category unless a product still references it.
func (s *Session) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.CategoryID == id {
			return &ValidationError{"remove or move products in this category first"}
		}
	}

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.persistCategories()
	return nil
}

// UpsertProduct replaces the product with the same id wholesale, or appends
// it with a fresh id when it has none. CategoryID is deliberately not
// checked against the category list: a product pointing at a removed
// category renders as uncategorized, same as the shop's previous system.
func (s *Session) UpsertProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	if p.Name == "" {
		return models.Product{}, &ValidationError{"product name cannot be empty"}
	}
	if p.Price < 0 {
		return models.Product{}, &ValidationError{"product price cannot be negative"}
	}

	if p.ID != "" {
		for i := range s.products {
			if s.products[i].ID == p.ID {
				s.products[i] = p
				s.persistProducts()
				return p, nil
			}
		}
	} else {
		p.ID = newID()
	}
	s.products = append(s.products, p)
	s.persistProducts()
	return p, nil
}

// DeleteProduct removes a product unconditionally. Cart lines referencing it
// are left alone; totals and rendering skip them.
func (s *Session) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.persistProducts()
}

// FindProduct looks a product up by id.
func (s *Session) FindProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProductLocked(id)
}

// SearchProducts filters by case-insensitive name substring and/or category.
// Empty arguments mean "no filter"; both given, both must match.
func (s *Session) SearchProducts(query, categoryID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	for _, p := range s.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProductCountByCategory returns how many products sit in each category,
// for the customer-facing sidebar badges.
func (s *Session) ProductCountByCategory() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int, len(s.categories))
	for _, p := range s.products {
		counts[p.CategoryID]++
	}
	return counts
}

func (s *Session) findProductLocked(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Session) categoryNameTaken(name, excludeID string) bool {
	for _, c := range s.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
