package specification

import "gorm.io/gorm"

// ActiveOnly keeps rows whose is_active flag is set.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// NameSearch matches the storefront search box: case-insensitive substring
// match on name or brand.
type NameSearch struct {
	Term string
}

func (s NameSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
}

// ByCategorySlug joins to categories and filters by slug.
type ByCategorySlug struct {
	Slug string
}

func (s ByCategorySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ?", s.Slug)
}
