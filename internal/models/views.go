package models

// UnknownUserName is the placeholder author name used when a referenced user
// id is absent from the users collection.
const UnknownUserName = "Unknown User"

// FeedComment is a comment decorated with its author's profile fields.
type FeedComment struct {
	Comment
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto,omitempty"`
}

// FeedPost is a post decorated with its author's profile fields and with
// decorated comments. Produced by the aggregation layer; never persisted.
type FeedPost struct {
	Post
	UserName  string        `json:"userName"`
	UserPhoto string        `json:"userPhoto,omitempty"`
	Comments  []FeedComment `json:"comments"`
}

// FriendDetail joins a friendship edge with the referenced user's profile.
// UserData falls back to a placeholder profile when the friend id does not
// resolve against the users collection.
type FriendDetail struct {
	FriendEdge
	UserData User `json:"userData"`
}
