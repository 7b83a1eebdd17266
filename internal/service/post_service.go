package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/realtime"
	"github.com/storefront-next/internal/repository"
)

// Broadcaster 帖子变更事件的推送端
type Broadcaster interface {
	Broadcast(event realtime.Event)
}

// PostInput 帖子创建/更新入参
type PostInput struct {
	Title   string
	Content string
	// ImagePath 已保存的图片路径。创建时必填，更新时为空表示保留原图。
	ImagePath string
}

// PostService 帖子管理。写操作要求 owner，变更会推送实时事件。
type PostService struct {
	posts   repository.PostRepository
	uploads *UploadService
	hub     Broadcaster
	cfg     *config.Config
}

// NewPostService 创建帖子服务。hub 为 nil 时不推送事件。
func NewPostService(posts repository.PostRepository, uploads *UploadService, hub Broadcaster, cfg *config.Config) *PostService {
	return &PostService{posts: posts, uploads: uploads, hub: hub, cfg: cfg}
}

// PageSize 帖子列表默认页大小
func (s *PostService) PageSize() int {
	return s.cfg.Pagination.PageSize
}

// List 帖子分页列表，带创建者信息。pageSize 非正时用默认页大小。
func (s *PostService) List(ctx context.Context, page, pageSize int) ([]models.Post, int64, error) {
	if pageSize <= 0 {
		pageSize = s.PageSize()
	}
	return s.posts.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		WithUser: true,
	})
}

// Get 按 ID 查询帖子，不存在返回 ErrNotFound
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建帖子并广播 create 事件
func (s *PostService) Create(ctx context.Context, userID uint, input PostInput) (*models.Post, error) {
	if verr := s.validate(input); verr != nil {
		return nil, verr
	}
	if input.ImagePath == "" {
		return nil, NewValidationError("image", "image is required")
	}

	post := &models.Post{
		UserID:    userID,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		ImagePath: input.ImagePath,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	created, err := s.Get(ctx, post.ID)
	if err == nil {
		post = created
	}

	s.broadcast(constants.PostActionCreate, post)
	logger.Infow("post_created", "post_id", post.ID, "user_id", userID)
	return post, nil
}

// Update 更新帖子并广播 update 事件。非 owner 返回 ErrForbidden。
func (s *PostService) Update(ctx context.Context, userID, id uint, input PostInput) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}
	if verr := s.validate(input); verr != nil {
		return nil, verr
	}

	oldImage := ""
	if input.ImagePath != "" && input.ImagePath != post.ImagePath {
		oldImage = post.ImagePath
		post.ImagePath = input.ImagePath
	}
	post.Title = strings.TrimSpace(input.Title)
	post.Content = strings.TrimSpace(input.Content)

	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if oldImage != "" {
		s.uploads.RemoveAsync(oldImage)
	}

	s.broadcast(constants.PostActionUpdate, post)
	logger.Infow("post_updated", "post_id", post.ID, "user_id", userID)
	return post, nil
}

// Delete 删除帖子并广播 delete 事件。非 owner 返回 ErrForbidden。
func (s *PostService) Delete(ctx context.Context, userID, id uint) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}

	if err := s.posts.Delete(id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if post.ImagePath != "" {
		s.uploads.RemoveAsync(post.ImagePath)
	}

	s.broadcast(constants.PostActionDelete, post)
	logger.Infow("post_deleted", "post_id", id, "user_id", userID)
	return nil
}

func (s *PostService) validate(input PostInput) *ValidationError {
	return evaluateRules([]FieldRule{
		{Field: "title", Value: input.Title, Required: true, MinLen: s.cfg.Posts.TitleMinLength},
		{Field: "content", Value: input.Content, Required: true, MinLen: s.cfg.Posts.ContentMinLength},
	})
}

func (s *PostService) broadcast(action string, post *models.Post) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(realtime.Event{Action: action, Post: post})
}
