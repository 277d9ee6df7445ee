package repository

import (
	"context"
	"time"

	"adminboard/internal/models"
	"adminboard/internal/observability"
	"adminboard/internal/storage"
)

// FriendRepository defines the interface for friendship data operations.
// The relation is stored unidirectionally: an edge from A to B does not
// imply a stored edge from B to A.
type FriendRepository interface {
	GetEntry(ctx context.Context, userID int) (*models.FriendshipEntry, error)
	AcceptedFriendIDs(ctx context.Context, userID int) ([]int, error)
	Add(ctx context.Context, userID, friendID int) error
	UpdateStatus(ctx context.Context, userID, friendID int, status models.FriendshipStatus) error
	Remove(ctx context.Context, userID, friendID int) error
}

// friendRepository implements FriendRepository over the friends collection.
type friendRepository struct {
	store *storage.Store
	log   *observability.RepoLogger
}

// NewFriendRepository creates a new friend repository.
func NewFriendRepository(store *storage.Store) FriendRepository {
	return &friendRepository{store: store, log: observability.NewRepoLogger("friends")}
}

// GetEntry returns the per-user friendship entry, or nil when the user has
// no entry yet. No entry is not an error.
func (r *friendRepository) GetEntry(ctx context.Context, userID int) (*models.FriendshipEntry, error) {
	for _, e := range r.store.Friends.All(ctx) {
		if e.UserID == userID {
			return &e, nil
		}
	}
	return nil, nil
}

// AcceptedFriendIDs returns the ids of friends with accepted status.
func (r *friendRepository) AcceptedFriendIDs(ctx context.Context, userID int) ([]int, error) {
	entry, err := r.GetEntry(ctx, userID)
	if err != nil || entry == nil {
		return []int{}, err
	}

	ids := []int{}
	for _, f := range entry.Friends {
		if f.Status == models.FriendshipStatusAccepted {
			ids = append(ids, f.FriendID)
		}
	}
	return ids, nil
}

// Add appends a pending edge to the user's friends list, creating the entry
// if absent. An existing edge to the same friend id is rejected.
func (r *friendRepository) Add(ctx context.Context, userID, friendID int) error {
	edge := models.FriendEdge{
		FriendID:  friendID,
		Status:    models.FriendshipStatusPending,
		DateAdded: time.Now().UTC().Format("2006-01-02"),
	}

	err := r.store.Friends.Update(ctx, func(entries []models.FriendshipEntry) ([]models.FriendshipEntry, error) {
		for i := range entries {
			if entries[i].UserID != userID {
				continue
			}
			if entries[i].Edge(friendID) != nil {
				return nil, models.NewValidationError("Friend is already in the list")
			}
			entries[i].Friends = append(entries[i].Friends, edge)
			return entries, nil
		}
		return append(entries, models.FriendshipEntry{
			UserID:  userID,
			Friends: []models.FriendEdge{edge},
		}), nil
	})
	if err != nil {
		r.log.LogError(ctx, err, "add")
		return err
	}

	r.log.LogMutation(ctx, "add", map[string]interface{}{
		"user_id":   userID,
		"friend_id": friendID,
	})
	return nil
}

// UpdateStatus overwrites the status of an existing edge. The status value
// itself is not validated, matching the legacy behavior.
func (r *friendRepository) UpdateStatus(ctx context.Context, userID, friendID int, status models.FriendshipStatus) error {
	err := r.store.Friends.Update(ctx, func(entries []models.FriendshipEntry) ([]models.FriendshipEntry, error) {
		for i := range entries {
			if entries[i].UserID != userID {
				continue
			}
			e := entries[i].Edge(friendID)
			if e == nil {
				return nil, models.NewNotFoundError("Friend", friendID)
			}
			e.Status = status
			return entries, nil
		}
		return nil, models.NewNotFoundError("Friend list", userID)
	})
	if err != nil {
		r.log.LogError(ctx, err, "update_status")
		return err
	}

	r.log.LogMutation(ctx, "update_status", map[string]interface{}{
		"user_id":   userID,
		"friend_id": friendID,
		"status":    string(status),
	})
	return nil
}

// Remove deletes the edge to friendID from the user's friends list.
func (r *friendRepository) Remove(ctx context.Context, userID, friendID int) error {
	err := r.store.Friends.Update(ctx, func(entries []models.FriendshipEntry) ([]models.FriendshipEntry, error) {
		for i := range entries {
			if entries[i].UserID != userID {
				continue
			}
			for j := range entries[i].Friends {
				if entries[i].Friends[j].FriendID == friendID {
					entries[i].Friends = append(entries[i].Friends[:j], entries[i].Friends[j+1:]...)
					return entries, nil
				}
			}
			return nil, models.NewNotFoundError("Friend", friendID)
		}
		return nil, models.NewNotFoundError("Friend list", userID)
	})
	if err != nil {
		r.log.LogError(ctx, err, "remove")
		return err
	}

	r.log.LogMutation(ctx, "remove", map[string]interface{}{
		"user_id":   userID,
		"friend_id": friendID,
	})
	return nil
}
