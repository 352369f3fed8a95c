// internal/domain/models/teacher.go
package models

import "time"

// Teacher is a registered staff account. The username is the document key
// (stored as Mongo _id) and is matched exactly, with no normalization.
//
// PasswordHash and Role are populated by the seeding path for the wider
// system; the announcements API only ever checks that a username exists.
type Teacher struct {
	Username     string    `bson:"_id" json:"username"`
	DisplayName  string    `bson:"display_name" json:"display_name"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Role         string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
