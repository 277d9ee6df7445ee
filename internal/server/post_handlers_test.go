package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adminboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPosts(t *testing.T) {
	app := fiber.New()
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	s := newTestServer(mockUsers, new(MockFriendRepository), mockPosts)
	app.Get("/admin/api/posts", s.GetPosts)

	mockPosts.On("List", mock.Anything).Return([]models.Post{
		{ID: "news-1", UserID: 1, Date: "2024-05-01T10:00:00Z"},
		{ID: "news-2", UserID: 2, Date: "2024-05-02T10:00:00Z", IsBlocked: true},
	}, nil)
	mockUsers.On("List", mock.Anything).Return([]models.User{
		{ID: 1, Fullname: "Alice"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/posts", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.FeedPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 2)
	// Newest first, blocked posts included, dangling author gets a placeholder.
	assert.Equal(t, "news-2", posts[0].ID)
	assert.Equal(t, models.UnknownUserName, posts[0].UserName)
	assert.Equal(t, "Alice", posts[1].UserName)
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(users *MockUserRepository, posts *MockPostRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"userId": 1, "content": "hello world"}`,
			mockSetup: func(users *MockUserRepository, posts *MockPostRepository) {
				users.On("GetByID", mock.Anything, 1).Return(&models.User{ID: 1}, nil)
				posts.On("Create", mock.Anything, 1, "hello world").
					Return(&models.Post{ID: "news-abc", UserID: 1, Content: "hello world"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing user ID",
			body:           `{"content": "hello"}`,
			mockSetup:      func(users *MockUserRepository, posts *MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Blank content",
			body:           `{"userId": 1, "content": "   "}`,
			mockSetup:      func(users *MockUserRepository, posts *MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Author does not exist",
			body: `{"userId": 99, "content": "hello"}`,
			mockSetup: func(users *MockUserRepository, posts *MockPostRepository) {
				users.On("GetByID", mock.Anything, 99).Return(nil, models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockUsers := new(MockUserRepository)
			mockPosts := new(MockPostRepository)
			s := newTestServer(mockUsers, new(MockFriendRepository), mockPosts)
			app.Post("/admin/api/posts", s.CreatePost)
			tt.mockSetup(mockUsers, mockPosts)

			req := httptest.NewRequest(http.MethodPost, "/admin/api/posts",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockUsers.AssertExpectations(t)
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestPostAction(t *testing.T) {
	tests := []struct {
		name           string
		action         string
		mockSetup      func(posts *MockPostRepository)
		expectedStatus int
	}{
		{
			name:   "Delete",
			action: "delete",
			mockSetup: func(posts *MockPostRepository) {
				posts.On("SetDeleted", mock.Anything, "news-1", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Restore",
			action: "restore",
			mockSetup: func(posts *MockPostRepository) {
				posts.On("SetDeleted", mock.Anything, "news-1", false).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Block",
			action: "block",
			mockSetup: func(posts *MockPostRepository) {
				posts.On("SetBlocked", mock.Anything, "news-1", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unblock",
			action: "unblock",
			mockSetup: func(posts *MockPostRepository) {
				posts.On("SetBlocked", mock.Anything, "news-1", false).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown action",
			action:         "promote",
			mockSetup:      func(posts *MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Post not found",
			action: "delete",
			mockSetup: func(posts *MockPostRepository) {
				posts.On("SetDeleted", mock.Anything, "news-1", true).
					Return(models.NewNotFoundError("Post", "news-1"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockPosts := new(MockPostRepository)
			s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
			app.Post("/admin/api/posts/:postId/:action", s.PostAction)
			tt.mockSetup(mockPosts)

			req := httptest.NewRequest(http.MethodPost, "/admin/api/posts/news-1/"+tt.action, nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestLikePost(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
	app.Post("/admin/posts/:postId/like", s.LikePost)

	mockPosts.On("ToggleLike", mock.Anything, "news-1", 3).
		Return(&models.LikeResult{Liked: true, LikesCount: 4}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/posts/news-1/like",
		bytes.NewBufferString(`{"userId": 3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.LikeResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Liked)
	assert.Equal(t, 4, result.LikesCount)
}

func TestLikePost_MissingUserID(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
	app.Post("/admin/posts/:postId/like", s.LikePost)

	req := httptest.NewRequest(http.MethodPost, "/admin/posts/news-1/like",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockPosts.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddComment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(posts *MockPostRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"userId": 2, "content": "nice post"}`,
			mockSetup: func(posts *MockPostRepository) {
				posts.On("AddComment", mock.Anything, "news-1", 2, "nice post").
					Return(&models.Comment{ID: "comment-abc", UserID: 2, Content: "nice post"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Blank content",
			body:           `{"userId": 2, "content": ""}`,
			mockSetup:      func(posts *MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Post not found",
			body: `{"userId": 2, "content": "hi"}`,
			mockSetup: func(posts *MockPostRepository) {
				posts.On("AddComment", mock.Anything, "news-1", 2, "hi").
					Return(nil, models.NewNotFoundError("Post", "news-1"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockPosts := new(MockPostRepository)
			s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
			app.Post("/admin/posts/:postId/comment", s.AddComment)
			tt.mockSetup(mockPosts)

			req := httptest.NewRequest(http.MethodPost, "/admin/posts/news-1/comment",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestDeleteComment(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
	app.Delete("/admin/posts/:postId/comments/:commentId", s.DeleteComment)

	mockPosts.On("DeleteComment", mock.Anything, "news-1", "comment-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/posts/news-1/comments/comment-1", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockPosts.AssertExpectations(t)
}

func TestGetUserFeed(t *testing.T) {
	app := fiber.New()
	mockUsers := new(MockUserRepository)
	mockFriends := new(MockFriendRepository)
	mockPosts := new(MockPostRepository)
	s := newTestServer(mockUsers, mockFriends, mockPosts)
	app.Get("/admin/userslist/:id/feed", s.GetUserFeed)

	mockFriends.On("AcceptedFriendIDs", mock.Anything, 1).Return([]int{2}, nil)
	mockPosts.On("List", mock.Anything).Return([]models.Post{
		{ID: "mine", UserID: 1, Date: "2024-05-01T10:00:00Z"},
		{ID: "friends", UserID: 2, Date: "2024-05-02T10:00:00Z"},
		{ID: "strangers", UserID: 3, Date: "2024-05-03T10:00:00Z"},
	}, nil)
	mockUsers.On("List", mock.Anything).Return([]models.User{
		{ID: 1, Fullname: "Alice"},
		{ID: 2, Fullname: "Bob"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/userslist/1/feed", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []models.FeedPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed, 2)
	assert.Equal(t, "friends", feed[0].ID)
	assert.Equal(t, "Bob", feed[0].UserName)
	assert.Equal(t, "mine", feed[1].ID)
}

func TestGetUserPosts(t *testing.T) {
	app := fiber.New()
	mockPosts := new(MockPostRepository)
	s := newTestServer(new(MockUserRepository), new(MockFriendRepository), mockPosts)
	app.Get("/admin/userslist/:id/posts", s.GetUserPosts)

	mockPosts.On("GetByUser", mock.Anything, 1).Return([]models.Post{
		{ID: "old", UserID: 1, Date: "2024-01-01T10:00:00Z"},
		{ID: "new", UserID: 1, Date: "2024-06-01T10:00:00Z"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/userslist/1/posts", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].ID)
}
