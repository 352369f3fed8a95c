package announcementstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no announcement has the requested ID.
var ErrNotFound = errors.New("announcement not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// Active returns the announcements visible on the given day: not yet expired
// and, when a start date is present, already started.
//
// Because dates are stored as YYYY-MM-DD strings, lexicographic order matches
// chronological order, so expiration_date >= on can be pushed into the query.
// The start-date half of the window is decided in process, where documents
// with malformed dates are dropped rather than surfaced.
func (s *Store) Active(ctx context.Context, on dates.Date) ([]models.Announcement, error) {
	filter := bson.M{"expiration_date": bson.M{"$gte": on.String()}}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []models.Announcement
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}

	active := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if a.ActiveOn(on) {
			active = append(active, a)
		}
	}
	return active, nil
}

// All returns every announcement, newest expiration first. Documents whose
// expiration date is missing or unparseable sort last. The sort is stable so
// repeated calls return the same order.
func (s *Store) All(ctx context.Context) ([]models.Announcement, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []models.Announcement
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}

	// Compare parsed dates, not raw strings, so a malformed value cannot
	// land between two valid ones. The zero Date sorts before everything.
	key := func(a models.Announcement) dates.Date {
		d, err := dates.Parse(a.ExpirationDate)
		if err != nil {
			return dates.Date{}
		}
		return d
	}
	sort.SliceStable(all, func(i, j int) bool {
		return key(all[j]).Before(key(all[i]))
	})
	return all, nil
}

// GetByID loads one announcement. Returns ErrNotFound if no document matches.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var a models.Announcement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert stores a new announcement and returns it with its assigned ID and
// creation timestamp filled in.
func (s *Store) Insert(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// Update holds the replacement fields for an announcement. An empty StartDate
// removes any stored start date.
type Update struct {
	Message        string
	ExpirationDate string
	StartDate      string
	UpdatedBy      string
}

// Update replaces an announcement's content in a single write. Setting the
// new fields and clearing a removed start date share one FindOneAndUpdate,
// so a concurrent reader never sees a half-applied document. Returns the
// updated announcement, or ErrNotFound if the ID does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Announcement, error) {
	now := time.Now().UTC()
	set := bson.M{
		"message":         upd.Message,
		"expiration_date": upd.ExpirationDate,
		"updated_by":      upd.UpdatedBy,
		"updated_at":      now,
	}
	update := bson.M{"$set": set}
	if upd.StartDate != "" {
		set["start_date"] = upd.StartDate
	} else {
		update["$unset"] = bson.M{"start_date": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Announcement
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an announcement. Returns ErrNotFound if the ID does not
// exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
