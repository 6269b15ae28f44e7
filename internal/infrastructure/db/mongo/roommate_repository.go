package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

const collectionRoommates = "roommates"

type RoommateRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRoommateRepository(db *mongo.Database) *RoommateRepository {
	return &RoommateRepository{db: db, col: db.Collection(collectionRoommates)}
}

func (r *RoommateRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Roommate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Roommate, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoommateRepository) Create(ctx context.Context, rm *domain.Roommate) (*domain.Roommate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db)
	if err != nil {
		return nil, err
	}

	clone := *rm
	clone.ID = id
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *RoommateRepository) Update(ctx context.Context, userID, id int, patch ports.RoommatePatch) (*domain.Roommate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "user_id": userID}
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Avatar != nil {
		set["avatar"] = *patch.Avatar
	}

	var rm domain.Roommate
	if len(set) == 0 {
		err := r.col.FindOne(ctx, filter).Decode(&rm)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoommateNotFound
		}
		if err != nil {
			return nil, err
		}
		return &rm, nil
	}

	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&rm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrRoommateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *RoommateRepository) Delete(ctx context.Context, userID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoommateNotFound
	}
	return nil
}
