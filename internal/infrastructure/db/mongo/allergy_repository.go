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

const collectionAllergies = "allergies"

type AllergyRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAllergyRepository(db *mongo.Database) *AllergyRepository {
	return &AllergyRepository{db: db, col: db.Collection(collectionAllergies)}
}

func (r *AllergyRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Allergy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Allergy, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AllergyRepository) Create(ctx context.Context, a *domain.Allergy) (*domain.Allergy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db)
	if err != nil {
		return nil, err
	}

	clone := *a
	clone.ID = id
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *AllergyRepository) Update(ctx context.Context, userID, id int, patch ports.AllergyPatch) (*domain.Allergy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "user_id": userID}
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Severity != nil {
		set["severity"] = *patch.Severity
	}
	if patch.RiskLevel != nil {
		set["risk_level"] = *patch.RiskLevel
	}

	var a domain.Allergy
	if len(set) == 0 {
		err := r.col.FindOne(ctx, filter).Decode(&a)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAllergyNotFound
		}
		if err != nil {
			return nil, err
		}
		return &a, nil
	}

	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrAllergyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AllergyRepository) Delete(ctx context.Context, userID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAllergyNotFound
	}
	return nil
}
