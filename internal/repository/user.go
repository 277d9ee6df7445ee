// Package repository provides typed data access over the collection store.
package repository

import (
	"context"

	"adminboard/internal/models"
	"adminboard/internal/observability"
	"adminboard/internal/storage"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.User, error)
	Update(ctx context.Context, id int, update models.UserUpdate) (*models.User, error)
}

// userRepository implements UserRepository over the users collection.
type userRepository struct {
	store *storage.Store
	log   *observability.RepoLogger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store *storage.Store) UserRepository {
	return &userRepository{store: store, log: observability.NewRepoLogger("users")}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.store.Users.All(ctx), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	for _, u := range r.store.Users.All(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}

// GetByIDs returns users whose id appears in ids, in collection order.
// An empty id set yields an empty result.
func (r *userRepository) GetByIDs(ctx context.Context, ids []int) ([]models.User, error) {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	matched := []models.User{}
	for _, u := range r.store.Users.All(ctx) {
		if _, ok := wanted[u.ID]; ok {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// Update merges the supplied fields into the stored record. Fields left nil
// in the update keep their current values.
func (r *userRepository) Update(ctx context.Context, id int, update models.UserUpdate) (*models.User, error) {
	var updated *models.User

	err := r.store.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == id {
				update.Apply(&users[i])
				u := users[i]
				updated = &u
				return users, nil
			}
		}
		return nil, models.NewNotFoundError("User", id)
	})
	if err != nil {
		r.log.LogError(ctx, err, "update")
		return nil, err
	}

	r.log.LogMutation(ctx, "update", map[string]interface{}{"user_id": id})
	return updated, nil
}
