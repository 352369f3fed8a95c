// internal/app/features/announcements/handler.go
package announcements

import (
	"context"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/schoolhub/internal/app/system/dates"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the persistence surface the announcement handlers depend on. The
// Mongo-backed announcement store satisfies it; tests substitute an
// in-memory fake.
type Store interface {
	Active(ctx context.Context, on dates.Date) ([]models.Announcement, error)
	All(ctx context.Context) ([]models.Announcement, error)
	Insert(ctx context.Context, a models.Announcement) (models.Announcement, error)
	Update(ctx context.Context, id primitive.ObjectID, upd announcementstore.Update) (*models.Announcement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Handler owns all Announcements handlers.
type Handler struct {
	Store Store
	Auth  auth.Authorizer
	Log   *zap.Logger
}

// NewHandler constructs an Announcements Handler.
func NewHandler(store Store, authorizer auth.Authorizer, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Auth:  authorizer,
		Log:   logger,
	}
}
