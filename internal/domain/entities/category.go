package entities

import "time"

// Category representa uma categoria de serviços
type Category struct {
	ID        string
	Name      string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SoftDelete marca a categoria como deletada
func (c *Category) SoftDelete(now time.Time) {
	c.IsDeleted = true
	c.DeletedAt = &now
}

// CategoryLink liga um serviço à sua categoria.
// Cada serviço tem no máximo um link (índice único em service_id).
type CategoryLink struct {
	ServiceID  string
	CategoryID string
}
