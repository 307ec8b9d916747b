package postService

import (
	"context"
	"testing"

	posts "blogserver/internal/api/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated member comments", func(t *testing.T) {
		repo := newFakePostsRepo()
		service := newTestPostsService(repo, &fakeS3{})
		postID := createTestPost(t, service, "Commented Post")

		err := service.CreateComment(ctx, postID, posts.CreateCommentRequest{Text: "Nice write-up"}, memberUser)
		require.NoError(t, err)

		detail, err := service.GetPostByID(ctx, postID)
		require.NoError(t, err)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "Nice write-up", detail.Comments[0].Text)
		assert.Equal(t, memberUser.ID, detail.Comments[0].AuthorID)
		assert.Equal(t, postID, detail.Comments[0].PostID)
	})

	t.Run("anonymous visitor is rejected", func(t *testing.T) {
		repo := newFakePostsRepo()
		service := newTestPostsService(repo, &fakeS3{})
		postID := createTestPost(t, service, "Commented Post")

		err := service.CreateComment(ctx, postID, posts.CreateCommentRequest{Text: "drive-by"}, anonymous)
		assert.ErrorIs(t, err, posts.ErrNotAuthenticated)

		detail, err := service.GetPostByID(ctx, postID)
		require.NoError(t, err)
		assert.Empty(t, detail.Comments)
	})

	t.Run("unknown post", func(t *testing.T) {
		repo := newFakePostsRepo()
		service := newTestPostsService(repo, &fakeS3{})

		err := service.CreateComment(ctx, "missing", posts.CreateCommentRequest{Text: "hello"}, memberUser)
		assert.ErrorIs(t, err, posts.ErrPostNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakePostsRepo, IPostsService, string, string) {
		t.Helper()
		repo := newFakePostsRepo()
		service := newTestPostsService(repo, &fakeS3{})
		postID := createTestPost(t, service, "Commented Post")

		require.NoError(t, service.CreateComment(ctx, postID, posts.CreateCommentRequest{Text: "mine"}, memberUser))

		comments, err := repo.store.GetCommentsByPost(ctx, postID)
		require.NoError(t, err)
		require.Len(t, comments, 1)

		return repo, service, postID, comments[0].ID
	}

	t.Run("owner deletes exactly their comment", func(t *testing.T) {
		repo, service, postID, commentID := setup(t)

		require.NoError(t, service.CreateComment(ctx, postID, posts.CreateCommentRequest{Text: "someone else"}, adminUser))

		err := service.DeleteComment(ctx, commentID, postID, memberUser)
		require.NoError(t, err)

		remaining, err := repo.store.GetCommentsByPost(ctx, postID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "someone else", remaining[0].Text)
	})

	t.Run("non-owner is rejected even as administrator", func(t *testing.T) {
		repo, service, postID, commentID := setup(t)

		err := service.DeleteComment(ctx, commentID, postID, adminUser)
		assert.ErrorIs(t, err, posts.ErrCommentNotOwned)

		remaining, err := repo.store.GetCommentsByPost(ctx, postID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("comment must belong to the named post", func(t *testing.T) {
		_, service, _, commentID := setup(t)

		err := service.DeleteComment(ctx, commentID, "different-post", memberUser)
		assert.ErrorIs(t, err, posts.ErrCommentNotFound)
	})

	t.Run("unknown comment", func(t *testing.T) {
		_, service, postID, _ := setup(t)

		err := service.DeleteComment(ctx, "missing", postID, memberUser)
		assert.ErrorIs(t, err, posts.ErrCommentNotFound)
	})
}
