// Package seed provides helpers to create test and demo data for the
// flat-file collections. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"adminboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Factory builds domain entities with generated content. It hands out
// sequential user IDs so friendship edges can reference real users.
type Factory struct {
	rng        *rand.Rand
	nextUserID int
}

// NewFactory creates a Factory with its own random source.
func NewFactory() *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		nextUserID: 1,
	}
}

var userStatuses = []models.UserStatus{
	models.UserStatusActive,
	models.UserStatusActive,
	models.UserStatusActive,
	models.UserStatusUnverified,
	models.UserStatusBlocked,
}

// BuildUser constructs a sample user. Optional override functions may
// modify the generated user before it is returned.
func (f *Factory) BuildUser(overrides ...func(*models.User)) models.User {
	birthdate := gofakeit.DateRange(
		time.Date(1955, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	user := models.User{
		ID:        f.nextUserID,
		Fullname:  gofakeit.Name(),
		Email:     gofakeit.Email(),
		Birthdate: birthdate.Format("2006-01-02"),
		Role:      "user",
		Status:    userStatuses[f.rng.Intn(len(userStatuses))],
		Photo:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	f.nextUserID++

	for _, override := range overrides {
		override(&user)
	}
	return user
}

// BuildPost constructs a sample post authored by the given user, dated
// within the last maxDays days.
func (f *Factory) BuildPost(userID int, maxDays int) models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	age := time.Duration(f.rng.Intn(maxDays*24*60)) * time.Minute

	return models.Post{
		ID:       "news-" + uuid.NewString(),
		UserID:   userID,
		Content:  gofakeit.Paragraph(1, 3, 8, "\n"),
		Date:     time.Now().UTC().Add(-age).Format(time.RFC3339),
		Likes:    []int{},
		Comments: []models.Comment{},
	}
}

// BuildComment constructs a sample comment dated after the post it
// belongs to.
func (f *Factory) BuildComment(userID int, postDate string) models.Comment {
	date := time.Now().UTC()
	if parsed, err := time.Parse(time.RFC3339, postDate); err == nil {
		gap := time.Since(parsed)
		if gap > 0 {
			date = parsed.Add(time.Duration(f.rng.Int63n(int64(gap))))
		}
	}

	return models.Comment{
		ID:      "comment-" + uuid.NewString(),
		UserID:  userID,
		Content: gofakeit.Sentence(f.rng.Intn(12) + 3),
		Date:    date.Format(time.RFC3339),
	}
}

// BuildFriendEdge constructs a friendship edge pointing at friendID.
// Roughly three quarters of generated edges are accepted.
func (f *Factory) BuildFriendEdge(friendID int) models.FriendEdge {
	status := models.FriendshipStatusAccepted
	if f.rng.Intn(4) == 0 {
		status = models.FriendshipStatusPending
	}
	daysBack := f.rng.Intn(365)

	return models.FriendEdge{
		FriendID:  friendID,
		Status:    status,
		DateAdded: time.Now().UTC().AddDate(0, 0, -daysBack).Format("2006-01-02"),
	}
}
