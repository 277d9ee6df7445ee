// Package models contains data structures for the application's domain models.
package models

// FriendshipStatus represents the status of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a friend request that has not been accepted yet.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an accepted friendship.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// FriendEdge is a directed friendship record inside a user's friends list.
// An edge from A to B does not imply a stored edge from B to A.
type FriendEdge struct {
	FriendID  int              `json:"friendId"`
	Status    FriendshipStatus `json:"status"`
	DateAdded string           `json:"dateAdded"`
}

// FriendshipEntry is one record of the friends collection: the per-user list
// of outgoing friendship edges. At most one edge per friend id is allowed,
// enforced on insert only.
type FriendshipEntry struct {
	UserID  int          `json:"userId"`
	Friends []FriendEdge `json:"friends"`
}

// Edge returns the edge to friendID, or nil if absent.
func (e *FriendshipEntry) Edge(friendID int) *FriendEdge {
	for i := range e.Friends {
		if e.Friends[i].FriendID == friendID {
			return &e.Friends[i]
		}
	}
	return nil
}
