package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/motigoal/backend/internal/model"
)

// StartingCoins is the reward balance granted to every new account.
const StartingCoins = 100

// UserStore is the directory of registered users. The Mongo-backed UserRepo
// is the production implementation; MemoryUserRepo mirrors its semantics for
// tests. Every call hits the store directly, there is no caching layer.
type UserStore interface {
	// GetByEmail returns the user stored under the normalized email, or
	// ErrNotFound.
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// Create inserts a new user with default flags, StartingCoins and a
	// creation timestamp. Returns ErrEmailExists when the email is taken;
	// uniqueness is enforced atomically at the storage boundary.
	Create(ctx context.Context, email, username, hashedPassword string) (model.User, error)
	// TouchLogin records the current instant as the user's last login.
	TouchLogin(ctx context.Context, id bson.ObjectID) error
}

// NormalizeEmail lowercases and trims an email so lookups and stored values
// agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
