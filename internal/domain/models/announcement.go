// internal/domain/models/announcement.go
package models

import (
	"time"

	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a school-wide notice with a visibility window.
//
// ExpirationDate is required; StartDate is optional. Both are stored in
// YYYY-MM-DD form (validated on the way in). Whether an announcement is
// "active" is derived at read time via ActiveOn, never stored.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message        string             `bson:"message" json:"message"`
	ExpirationDate string             `bson:"expiration_date" json:"expiration_date"`
	StartDate      string             `bson:"start_date,omitempty" json:"start_date,omitempty"`

	CreatedBy string     `bson:"created_by" json:"created_by"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ActiveOn reports whether the announcement is visible on the given date:
// the expiration date has not passed, and the start date (when present) has
// been reached. A record whose stored dates no longer parse is never active.
func (a Announcement) ActiveOn(on dates.Date) bool {
	exp, err := dates.Parse(a.ExpirationDate)
	if err != nil || exp.Before(on) {
		return false
	}
	if a.StartDate == "" {
		return true
	}
	start, err := dates.Parse(a.StartDate)
	if err != nil {
		return false
	}
	return !start.After(on)
}
