// Package models contains data structures for the application's domain models.
package models

// Comment is a nested comment on a post.
type Comment struct {
	ID      string `json:"id"`
	UserID  int    `json:"userId"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Post represents one record of the news collection. Dates are stored as
// RFC 3339 strings, matching the legacy news.json layout. The IsDeleted and
// IsBlocked flags are independent: a post can carry both at once.
type Post struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Likes     []int     `json:"likes"`
	Comments  []Comment `json:"comments"`
	IsDeleted bool      `json:"isDeleted"`
	IsBlocked bool      `json:"isBlocked"`
}

// LikeResult reports the outcome of toggling a like on a post.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}
