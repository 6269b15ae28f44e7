package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safespend/safespend-api/internal/core/domain"
)

const collectionBillSplits = "bill_splits"

type BillSplitRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBillSplitRepository(db *mongo.Database) *BillSplitRepository {
	return &BillSplitRepository{db: db, col: db.Collection(collectionBillSplits)}
}

// ListByUser returns splits the user created or participates in, most recent
// first.
func (r *BillSplitRepository) ListByUser(ctx context.Context, userID int) ([]*domain.BillSplit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"creator_id": userID},
		bson.M{"participants": userID},
	}}
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}

	out := make([]*domain.BillSplit, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BillSplitRepository) Create(ctx context.Context, b *domain.BillSplit) (*domain.BillSplit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db)
	if err != nil {
		return nil, err
	}

	clone := *b
	clone.ID = id
	clone.Date = time.Now()
	clone.IsSettled = false
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *BillSplitRepository) FindByID(ctx context.Context, id int) (*domain.BillSplit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.BillSplit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBillSplitNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Settle sets is_settled regardless of its current value, making repeat
// settles no-ops. The filter restricts the write to splits the user created
// or participates in; anything else reads as not found.
func (r *BillSplitRepository) Settle(ctx context.Context, userID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "$or": bson.A{
		bson.M{"creator_id": userID},
		bson.M{"participants": userID},
	}}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_settled": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBillSplitNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes on the bill_splits collection.
func (r *BillSplitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "participants", Value: 1}}},
	})
	return err
}
