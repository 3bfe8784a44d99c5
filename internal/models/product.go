package models

import "time"

// Product is a menu item. It belongs to one restaurant and one category of
// that same restaurant; it only appears on the public menu when both itself
// and its category are active.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RestaurantID string    `json:"restaurantId" gorm:"index;type:varchar(36);not null"`
	CategoryID   string    `json:"categoryId" gorm:"index;type:varchar(36);not null" validate:"required"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Description  string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price        float64   `json:"price" validate:"gte=0"`
	ImageURL     string    `json:"imageUrl" gorm:"type:varchar(500)"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductPatch carries a partial update for a product. Nil fields were
// absent from the request and must keep their stored values.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"categoryId"`
	ImageURL    *string  `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

// Fields returns the column/value pairs present in the patch.
func (p ProductPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.CategoryID != nil {
		fields["category_id"] = *p.CategoryID
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}
	return fields
}

// ProductCategory is the category summary embedded in product listings.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductWithCategory is a product annotated with its category's id and name,
// the shape returned by product listings and the public menu.
type ProductWithCategory struct {
	Product
	Category ProductCategory `json:"category" gorm:"-"`
}
