package postHandler

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	posts "blogserver/internal/api/post"
	"blogserver/internal/entity"
	"blogserver/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakePostsService struct {
	mu              sync.Mutex
	createdComments []posts.CreateCommentRequest
}

func (f *fakePostsService) CreatePost(_ context.Context, _ posts.CreatePostRequest, _ entity.SessionUser, _ *multipart.FileHeader) error {
	return nil
}

func (f *fakePostsService) GetAllPosts(_ context.Context) (*posts.PostListResponse, error) {
	return &posts.PostListResponse{
		Posts: []posts.PostResponse{{ID: "p1", Title: "First Post"}},
		Total: 1,
	}, nil
}

func (f *fakePostsService) GetPostByID(_ context.Context, id string) (*posts.PostDetailResponse, error) {
	if id != "p1" {
		return nil, posts.ErrPostNotFound
	}
	return &posts.PostDetailResponse{
		Post:     posts.PostResponse{ID: "p1", Title: "First Post"},
		Comments: []posts.CommentResponse{},
	}, nil
}

func (f *fakePostsService) UpdatePost(_ context.Context, _ string, _ posts.UpdatePostRequest, _ entity.SessionUser, _ *multipart.FileHeader) error {
	return nil
}

func (f *fakePostsService) DeletePost(_ context.Context, _ string, _ entity.SessionUser) error {
	return nil
}

func (f *fakePostsService) CreateComment(_ context.Context, _ string, req posts.CreateCommentRequest, _ entity.SessionUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdComments = append(f.createdComments, req)
	return nil
}

func (f *fakePostsService) DeleteComment(_ context.Context, _ string, _ string, _ entity.SessionUser) error {
	return nil
}

func newHandlerTestApp(service *fakePostsService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := New(logger, service, validator.New(), middleware.New(logger, nil, nil))

	app := fiber.New()
	h.Start(app)

	return app
}

func TestAnonymousCommentRedirectsToLogin(t *testing.T) {
	service := &fakePostsService{}
	app := newHandlerTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/post/p1", strings.NewReader("comment=hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var flashCookie string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" {
			flashCookie = cookie.Value
		}
	}
	assert.NotEmpty(t, flashCookie)

	service.mu.Lock()
	defer service.mu.Unlock()
	assert.Empty(t, service.createdComments)
}

func TestHomeListsPosts(t *testing.T) {
	app := newHandlerTestApp(&fakePostsService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "First Post")
}

func TestGetUnknownPost(t *testing.T) {
	app := newHandlerTestApp(&fakePostsService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/post/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMutationsRequireSession(t *testing.T) {
	app := newHandlerTestApp(&fakePostsService{})

	paths := []string{"/new-post", "/delete/p1", "/delete_comment/c1/p1"}
	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
