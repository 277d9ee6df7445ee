// Package service contains cross-repository read views over the collection
// store: feed assembly, friends-with-profile, and posts-with-author joins.
package service

import (
	"context"
	"sort"
	"time"

	"adminboard/internal/models"
	"adminboard/internal/repository"
)

// FeedService joins posts and friendship edges against the users collection
// to produce denormalized view objects. It is read-only.
type FeedService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
	postRepo   repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(userRepo repository.UserRepository, friendRepo repository.FriendRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
		postRepo:   postRepo,
	}
}

// UserFeed returns the union of the user's own posts and their accepted
// friends' posts, newest first, decorated with author profiles.
func (s *FeedService) UserFeed(ctx context.Context, userID int) ([]models.FeedPost, error) {
	friendIDs, err := s.friendRepo.AcceptedFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	authors := map[int]struct{}{userID: {}}
	for _, id := range friendIDs {
		authors[id] = struct{}{}
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	feed := []models.Post{}
	for _, p := range posts {
		if _, ok := authors[p.UserID]; ok {
			feed = append(feed, p)
		}
	}
	sortByDateDesc(feed)

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}
	return decoratePosts(feed, users), nil
}

// FriendsWithProfiles returns the user's friendship edges joined with the
// referenced users' profiles. A dangling friend id gets a placeholder
// profile instead of being dropped.
func (s *FeedService) FriendsWithProfiles(ctx context.Context, userID int) ([]models.FriendDetail, error) {
	entry, err := s.friendRepo.GetEntry(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return []models.FriendDetail{}, nil
	}

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.FriendDetail, 0, len(entry.Friends))
	for _, edge := range entry.Friends {
		detail := models.FriendDetail{FriendEdge: edge}
		if u, ok := users[edge.FriendID]; ok {
			detail.UserData = u
		} else {
			detail.UserData = models.User{Fullname: models.UnknownUserName}
		}
		details = append(details, detail)
	}
	return details, nil
}

// PostsWithAuthor returns every post, regardless of author or flags,
// decorated with author profiles and sorted newest first.
func (s *FeedService) PostsWithAuthor(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sortByDateDesc(sorted)

	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}
	return decoratePosts(sorted, users), nil
}

// UserPosts returns the user's own posts, newest first, undecorated.
func (s *FeedService) UserPosts(ctx context.Context, userID int) ([]models.Post, error) {
	posts, err := s.postRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(posts)
	return posts, nil
}

func (s *FeedService) userIndex(ctx context.Context) (map[int]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[int]models.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index, nil
}

// sortByDateDesc orders posts newest first. The sort is stable: posts with
// equal (or equally unparsable) dates keep their collection order.
func sortByDateDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].Date).After(parseDate(posts[j].Date))
	})
}

// parseDate reads an RFC 3339 timestamp, falling back to a bare date.
// Unparsable values sort as the zero time, i.e. oldest.
func parseDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func decoratePosts(posts []models.Post, users map[int]models.User) []models.FeedPost {
	decorated := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		fp := models.FeedPost{Post: p}
		if author, ok := users[p.UserID]; ok {
			fp.UserName = author.Fullname
			fp.UserPhoto = author.Photo
		} else {
			fp.UserName = models.UnknownUserName
		}

		fp.Comments = make([]models.FeedComment, 0, len(p.Comments))
		for _, cm := range p.Comments {
			fc := models.FeedComment{Comment: cm}
			if author, ok := users[cm.UserID]; ok {
				fc.UserName = author.Fullname
				fc.UserPhoto = author.Photo
			} else {
				fc.UserName = models.UnknownUserName
			}
			fp.Comments = append(fp.Comments, fc)
		}
		decorated = append(decorated, fp)
	}
	return decorated
}
