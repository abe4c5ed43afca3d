package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/model"
)

// MemoryRepository is an in-process UserRepository keyed by email. It backs
// tests and serves as a standalone dev backend when no mongo is around.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryRepository builds an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]model.User)}
}

func (r *MemoryRepository) Insert(_ context.Context, user *model.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	// like the document store, a second insert with the same email just
	// shadows the first on lookup
	r.users[user.Email] = *user
	return user.ID.Hex(), nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) UpdateByEmail(_ context.Context, email string, user *model.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[email]
	if !ok {
		return 0, nil
	}
	updated := *user
	updated.ID = existing.ID
	delete(r.users, email)
	r.users[updated.Email] = updated
	return 1, nil
}

func (r *MemoryRepository) DeleteByEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; !ok {
		return 0, nil
	}
	delete(r.users, email)
	return 1, nil
}
