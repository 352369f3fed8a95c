package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher creates a teacher record with the given username.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		Username:    username,
		DisplayName: displayName,
		Role:        "teacher",
		CreatedAt:   time.Now().UTC(),
	}

	_, err := f.db.Collection("teachers").InsertOne(ctx, teacher)
	if err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}

	return teacher
}

// CreateAnnouncement creates an announcement with the given dates. Pass an
// empty startDate to leave the field absent, the same shape the API writes
// for announcements that are visible immediately.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message, expirationDate, startDate, createdBy string) models.Announcement {
	f.t.Helper()

	a := models.Announcement{
		ID:             primitive.NewObjectID(),
		Message:        message,
		ExpirationDate: expirationDate,
		StartDate:      startDate,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := f.db.Collection("announcements").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return a
}
