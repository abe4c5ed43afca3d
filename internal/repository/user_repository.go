package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/model"
)

const usersCollection = "users"

// UserRepository defines persistence operations. Email is the sole lookup
// key; nothing beyond find-before-write enforces its uniqueness.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateByEmail(ctx context.Context, email string, user *model.User) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a repository over the users collection.
func NewMongoRepository(db *mongo.Database) UserRepository {
	return &mongoRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoRepository) Insert(ctx context.Context, user *model.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoRepository) UpdateByEmail(ctx context.Context, email string, user *model.User) (int64, error) {
	// full document overwrite; _id is omitted from the $set by its zero value
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": user})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *mongoRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
