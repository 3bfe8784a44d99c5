package models

import "time"

// Category groups products on a restaurant's menu. Only active categories
// appear on the public menu; Order controls their display position.
type Category struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RestaurantID string    `json:"restaurantId" gorm:"index;type:varchar(36);not null"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Order        int       `json:"order" gorm:"column:display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryPatch carries a partial update for a category. Nil fields were
// absent from the request and must keep their stored values.
type CategoryPatch struct {
	Name   *string `json:"name"`
	Order  *int    `json:"order"`
	Active *bool   `json:"active"`
}

// Fields returns the column/value pairs present in the patch.
func (p CategoryPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Order != nil {
		fields["display_order"] = *p.Order
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}
	return fields
}
