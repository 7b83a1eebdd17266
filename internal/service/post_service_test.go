package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/realtime"
	"github.com/storefront-next/internal/repository"
)

// recordingHub 记录广播事件的测试替身
type recordingHub struct {
	events []realtime.Event
}

func (h *recordingHub) Broadcast(event realtime.Event) {
	h.events = append(h.events, event)
}

func newPostServiceTest(t *testing.T) (*PostService, *recordingHub, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "post_service_test", &models.User{}, &models.Post{})
	cfg := newServiceTestConfig(t)
	hub := &recordingHub{}
	uploads := NewUploadService(cfg, nil)
	svc := NewPostService(repository.NewPostRepository(db), uploads, hub, cfg)
	return svc, hub, db
}

func createPost(t *testing.T, svc *PostService, userID uint, title string) *models.Post {
	t.Helper()
	post, err := svc.Create(context.Background(), userID, PostInput{
		Title:     title,
		Content:   "some content for the post",
		ImagePath: "/uploads/posts/test.png",
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func TestPostServiceCreateBroadcastsEvent(t *testing.T) {
	svc, hub, db := newPostServiceTest(t)
	db.Create(&models.User{ID: 1, Email: "alice@example.com", PasswordHash: "x", DisplayName: "Alice"})

	post := createPost(t, svc, 1, "First Post")
	if post.ID == 0 {
		t.Fatal("expected persisted post id")
	}
	if post.User == nil || post.User.Email != "alice@example.com" {
		t.Fatalf("expected creator preloaded, got %+v", post.User)
	}

	if len(hub.events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(hub.events))
	}
	event := hub.events[0]
	if event.Action != constants.PostActionCreate {
		t.Fatalf("expected %s action, got %s", constants.PostActionCreate, event.Action)
	}
	carried, ok := event.Post.(*models.Post)
	if !ok || carried.ID != post.ID {
		t.Fatalf("event should carry the created post, got %+v", event.Post)
	}
}

func TestPostServiceCreateValidation(t *testing.T) {
	svc, hub, _ := newPostServiceTest(t)

	_, err := svc.Create(context.Background(), 1, PostInput{Title: "ab", Content: "abc", ImagePath: "/uploads/posts/x.png"})
	verr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected title and content violations, got %+v", verr.Fields)
	}

	_, err = svc.Create(context.Background(), 1, PostInput{Title: "Valid Title", Content: "valid content"})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("expected validation error for missing image, got %v", err)
	}

	if len(hub.events) != 0 {
		t.Fatalf("rejected posts must not broadcast, got %d events", len(hub.events))
	}
}

func TestPostServiceUpdateEnforcesOwnership(t *testing.T) {
	svc, hub, _ := newPostServiceTest(t)
	post := createPost(t, svc, 1, "First Post")
	hub.events = nil

	_, err := svc.Update(context.Background(), 2, post.ID, PostInput{Title: "Hijacked", Content: "other content"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(hub.events) != 0 {
		t.Fatalf("forbidden update must not broadcast, got %d events", len(hub.events))
	}

	updated, err := svc.Update(context.Background(), 1, post.ID, PostInput{Title: "Edited", Content: "new content here"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Edited" {
		t.Fatalf("expected updated title, got %s", updated.Title)
	}
	if len(hub.events) != 1 || hub.events[0].Action != constants.PostActionUpdate {
		t.Fatalf("expected a single update event, got %+v", hub.events)
	}
}

func TestPostServiceDeleteBroadcastsEvent(t *testing.T) {
	svc, hub, _ := newPostServiceTest(t)
	post := createPost(t, svc, 1, "First Post")
	hub.events = nil

	if err := svc.Delete(context.Background(), 2, post.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1, post.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	if len(hub.events) != 1 || hub.events[0].Action != constants.PostActionDelete {
		t.Fatalf("expected a single delete event, got %+v", hub.events)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPostServiceListUsesDefaultPageSize(t *testing.T) {
	svc, _, _ := newPostServiceTest(t)
	for i := 0; i < 3; i++ {
		createPost(t, svc, 1, "Post Number")
	}

	posts, total, err := svc.List(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("expected default page size 2, got %d posts", len(posts))
	}
}
