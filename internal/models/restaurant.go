package models

import "time"

// Restaurant status values shown on the public menu.
const (
	RestaurantStatusOpen   = "open"
	RestaurantStatusClosed = "closed"
)

// Restaurant is the tenant root: every user, category and product is scoped
// to exactly one restaurant by RestaurantID.
type Restaurant struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name             string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Slug             string    `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Logo             string    `json:"logo" gorm:"type:varchar(500)"`
	WhatsApp         string    `json:"whatsapp" gorm:"type:varchar(32)"`
	HoursOfOperation string    `json:"hoursOfOperation" gorm:"type:varchar(200)"`
	Status           string    `json:"status" gorm:"type:varchar(16);default:open" validate:"omitempty,oneof=open closed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RestaurantPatch carries a partial update for a restaurant. Nil fields were
// absent from the request and must keep their stored values.
type RestaurantPatch struct {
	Name             *string `json:"name"`
	Logo             *string `json:"logo"`
	WhatsApp         *string `json:"whatsapp"`
	HoursOfOperation *string `json:"hoursOfOperation"`
	Status           *string `json:"status"`
}

// Fields returns the column/value pairs present in the patch.
func (p RestaurantPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Logo != nil {
		fields["logo"] = *p.Logo
	}
	if p.WhatsApp != nil {
		fields["whats_app"] = *p.WhatsApp
	}
	if p.HoursOfOperation != nil {
		fields["hours_of_operation"] = *p.HoursOfOperation
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	return fields
}
