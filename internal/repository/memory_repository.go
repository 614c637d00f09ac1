package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/motigoal/backend/internal/model"
)

// MemoryUserRepo is an in-memory UserStore with the same semantics as the
// Mongo-backed repo. It backs handler and middleware tests and local runs
// without a database.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by normalized email
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]model.User)}
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[NormalizeEmail(email)]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepo) Create(_ context.Context, email, username, hashedPassword string) (model.User, error) {
	key := NormalizeEmail(email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[key]; ok {
		return model.User{}, ErrEmailExists
	}
	u := model.User{
		ID:               bson.NewObjectID(),
		Email:            key,
		Username:         username,
		HashedPassword:   hashedPassword,
		IsActive:         true,
		IsAdmin:          false,
		MotiCoins:        StartingCoins,
		CreatedAt:        time.Now().UTC(),
		ProfileCompleted: false,
	}
	r.users[key] = u
	return u, nil
}

func (r *MemoryUserRepo) TouchLogin(_ context.Context, id bson.ObjectID) error {
	now := time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, u := range r.users {
		if u.ID == id {
			u.LastLogin = &now
			r.users[key] = u
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the number of stored users.
func (r *MemoryUserRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
