package teacherstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateTeacher is returned when creating a teacher whose username is
// already taken.
var ErrDuplicateTeacher = errors.New("a teacher with this username already exists")

// Store provides access to the teachers collection. Teachers are keyed by
// username: the username is the document _id, so existence checks ride the
// primary index.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// Exists reports whether a teacher with the given username is on file.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByUsername loads a teacher record. Returns mongo.ErrNoDocuments if the
// username is unknown.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"_id": username}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new teacher. Returns ErrDuplicateTeacher if the username
// is already taken.
func (s *Store) Create(ctx context.Context, t models.Teacher) (models.Teacher, error) {
	t.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Teacher{}, ErrDuplicateTeacher
		}
		return models.Teacher{}, err
	}
	return t, nil
}

// Upsert creates or refreshes a teacher record. Used by startup seeding so a
// restart never fails on usernames that already exist.
func (s *Store) Upsert(ctx context.Context, t models.Teacher) error {
	filter := bson.M{"_id": t.Username}
	update := bson.M{
		"$set": bson.M{
			"display_name":  t.DisplayName,
			"password_hash": t.PasswordHash,
			"role":          t.Role,
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// List returns all teachers ordered by username.
func (s *Store) List(ctx context.Context) ([]models.Teacher, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
