package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safespend/safespend-api/internal/core/domain"
)

const collectionActivities = "activities"

const defaultActivityLimit = 10

// ActivityRepository stores the append-only feed; only insert and read
// operations exist.
type ActivityRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db, col: db.Collection(collectionActivities)}
}

func (r *ActivityRepository) ListRecentByUser(ctx context.Context, userID int, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultActivityLimit
	}

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Activity, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db)
	if err != nil {
		return nil, err
	}

	clone := *a
	clone.ID = id
	clone.Date = time.Now()
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// EnsureIndexes creates the feed-read index on the activities collection.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	})
	return err
}
