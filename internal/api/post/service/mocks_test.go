package postService

import (
	"context"
	"mime/multipart"
	"sync"

	posts "blogserver/internal/api/post"
	postRepository "blogserver/internal/api/post/repository"
	"blogserver/internal/entity"
)

type fakeBlogStore struct {
	mu           sync.Mutex
	posts        map[string]entity.Post
	postOrder    []string
	comments     map[string]entity.Comment
	commentOrder []string
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		posts:    make(map[string]entity.Post),
		comments: make(map[string]entity.Comment),
	}
}

func (s *fakeBlogStore) CreatePost(_ context.Context, post entity.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
	s.postOrder = append(s.postOrder, post.ID)
	return nil
}

func (s *fakeBlogStore) GetPostByID(_ context.Context, id string) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return entity.Post{}, posts.ErrPostNotFound
	}
	return post, nil
}

func (s *fakeBlogStore) GetPostByTitle(_ context.Context, title string) (entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.postOrder {
		if s.posts[id].Title == title {
			return s.posts[id], nil
		}
	}
	return entity.Post{}, posts.ErrPostNotFound
}

func (s *fakeBlogStore) GetAllPosts(_ context.Context) ([]entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		result = append(result, s.posts[id])
	}
	return result, nil
}

func (s *fakeBlogStore) UpdatePost(_ context.Context, post entity.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return posts.ErrPostNotFound
	}
	s.posts[post.ID] = post
	return nil
}

func (s *fakeBlogStore) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return posts.ErrPostNotFound
	}
	delete(s.posts, id)
	for i, pid := range s.postOrder {
		if pid == id {
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeBlogStore) CreateComment(_ context.Context, comment entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.ID] = comment
	s.commentOrder = append(s.commentOrder, comment.ID)
	return nil
}

func (s *fakeBlogStore) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return entity.Comment{}, posts.ErrCommentNotFound
	}
	return comment, nil
}

func (s *fakeBlogStore) GetCommentsByPost(_ context.Context, postID string) ([]entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entity.Comment
	for _, id := range s.commentOrder {
		if s.comments[id].ParentPostID == postID {
			result = append(result, s.comments[id])
		}
	}
	return result, nil
}

func (s *fakeBlogStore) DeleteComment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return posts.ErrCommentNotFound
	}
	delete(s.comments, id)
	for i, cid := range s.commentOrder {
		if cid == id {
			s.commentOrder = append(s.commentOrder[:i], s.commentOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeBlogStore) DeleteCommentsByPost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.commentOrder[:0]
	for _, id := range s.commentOrder {
		if s.comments[id].ParentPostID == postID {
			delete(s.comments, id)
			continue
		}
		kept = append(kept, id)
	}
	s.commentOrder = kept
	return nil
}

type fakePostsRepo struct {
	store *fakeBlogStore
}

func newFakePostsRepo() *fakePostsRepo {
	return &fakePostsRepo{store: newFakeBlogStore()}
}

func (r *fakePostsRepo) NewClient(_ bool) (postRepository.Client, error) {
	return postRepository.Client{
		Posts:    r.store,
		Comments: r.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	mu       sync.Mutex
	uploads  []string
	deletes  []string
	presigns []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, file.Filename)
	return "https://bucket.s3.amazonaws.com/" + file.Filename, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presigns = append(f.presigns, fileName)
	return fileName + "?signature=test", nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, fileName)
	return nil
}
