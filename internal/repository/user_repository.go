package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/motigoal/backend/internal/model"
)

// UserRepo is the Mongo-backed user directory.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(coll *mongo.Collection) *UserRepo { return &UserRepo{coll: coll} }

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": NormalizeEmail(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// Create inserts a new user document. The unique index on email makes the
// insert the uniqueness check; a duplicate-key error from the server maps to
// ErrEmailExists. There is no read-before-write.
func (r *UserRepo) Create(ctx context.Context, email, username, hashedPassword string) (model.User, error) {
	u := model.User{
		ID:               bson.NewObjectID(),
		Email:            NormalizeEmail(email),
		Username:         username,
		HashedPassword:   hashedPassword,
		IsActive:         true,
		IsAdmin:          false,
		MotiCoins:        StartingCoins,
		CreatedAt:        time.Now().UTC(),
		ProfileCompleted: false,
	}
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// TouchLogin writes the current UTC instant into last_login.
func (r *UserRepo) TouchLogin(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_login": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
