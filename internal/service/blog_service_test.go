package service

import (
	"errors"
	"testing"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newBlogTestService(t *testing.T) *BlogService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.BlogCategory{}, &models.BlogPost{}, &models.BlogComment{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBlogService(repository.NewBlogRepository(db))
}

func TestBlogService_PublishStampsPublishedAt(t *testing.T) {
	svc := newBlogTestService(t)

	draft, err := svc.CreatePost(BlogPostInput{Title: "Guia de compras", Slug: "guia-de-compras", Author: "Equipe"})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if draft.Published || draft.PublishedAt != nil {
		t.Fatalf("draft should not be published: %+v", draft)
	}

	published, err := svc.UpdatePost(draft.ID, BlogPostInput{Title: draft.Title, Slug: draft.Slug, Author: draft.Author, Published: true})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !published.Published || published.PublishedAt == nil {
		t.Fatalf("publish transition did not stamp: %+v", published)
	}
	stamp := *published.PublishedAt

	again, err := svc.UpdatePost(draft.ID, BlogPostInput{Title: "Guia atualizado", Slug: draft.Slug, Author: draft.Author, Published: true})
	if err != nil {
		t.Fatalf("update published post failed: %v", err)
	}
	if again.PublishedAt == nil || again.PublishedAt.Unix() != stamp.Unix() {
		t.Fatalf("editing a published post must keep the original stamp: %v vs %v", again.PublishedAt, stamp)
	}

	direct, err := svc.CreatePost(BlogPostInput{Title: "Lancamentos", Slug: "lancamentos", Published: true})
	if err != nil {
		t.Fatalf("create published failed: %v", err)
	}
	if direct.PublishedAt == nil {
		t.Fatal("post created published should be stamped")
	}
}

func TestBlogService_SlugUniqueness(t *testing.T) {
	svc := newBlogTestService(t)

	if _, err := svc.CreatePost(BlogPostInput{Title: "Primeiro", Slug: "primeiro"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreatePost(BlogPostInput{Title: "Clone", Slug: "primeiro"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}

	second, err := svc.CreatePost(BlogPostInput{Title: "Segundo", Slug: "segundo"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.UpdatePost(second.ID, BlogPostInput{Title: "Segundo", Slug: "primeiro"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists on update, got %v", err)
	}
	if _, err := svc.UpdatePost(second.ID, BlogPostInput{Title: "Segundo v2", Slug: "segundo"}); err != nil {
		t.Fatalf("keeping own slug should pass: %v", err)
	}

	if _, err := svc.CreateCategory(BlogCategoryInput{Name: "Dicas", Slug: "dicas"}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.CreateCategory(BlogCategoryInput{Name: "Dicas 2", Slug: "dicas"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists on category, got %v", err)
	}
}

func TestBlogService_CommentModeration(t *testing.T) {
	svc := newBlogTestService(t)

	if _, err := svc.CreatePost(BlogPostInput{Title: "Rascunho", Slug: "rascunho"}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if _, err := svc.CreateComment("rascunho", BlogCommentInput{AuthorName: "Ana", Content: "Oi"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("commenting a draft must 404, got %v", err)
	}

	post, err := svc.CreatePost(BlogPostInput{Title: "Publicado", Slug: "publicado", Published: true})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	comment, err := svc.CreateComment(post.Slug, BlogCommentInput{AuthorName: " Ana ", AuthorEmail: "ana@example.com", Content: "Otimo artigo"})
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Approved {
		t.Fatal("new comments must start unapproved")
	}
	if comment.AuthorName != "Ana" {
		t.Fatalf("author name not trimmed: %q", comment.AuthorName)
	}

	visible, err := svc.ListApprovedComments(post.Slug)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("unapproved comment leaked: %d", len(visible))
	}

	if err := svc.ApproveComment(comment.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	visible, err = svc.ListApprovedComments(post.Slug)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("expected 1 approved comment, got %d", len(visible))
	}

	all, err := svc.ListComments(post.ID)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("moderation list should see every comment, got %d", len(all))
	}
}

func TestBlogService_GetPublishedPost(t *testing.T) {
	svc := newBlogTestService(t)

	if _, err := svc.CreatePost(BlogPostInput{Title: "Rascunho", Slug: "rascunho"}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if _, err := svc.GetPublishedPost("rascunho"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must not be served publicly, got %v", err)
	}

	if _, err := svc.CreatePost(BlogPostInput{Title: "No ar", Slug: "no-ar", Published: true}); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	post, err := svc.GetPublishedPost("no-ar")
	if err != nil {
		t.Fatalf("get published failed: %v", err)
	}
	if post.Title != "No ar" {
		t.Fatalf("wrong post: %q", post.Title)
	}
}

func TestBlogService_DeletePostRemovesComments(t *testing.T) {
	svc := newBlogTestService(t)

	post, err := svc.CreatePost(BlogPostInput{Title: "Para apagar", Slug: "para-apagar", Published: true})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if _, err := svc.CreateComment(post.Slug, BlogCommentInput{AuthorName: "Ana", Content: "Oi"}); err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := svc.DeletePost(post.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}
	comments, err := svc.ListComments(post.ID)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("comments should be removed with the post, got %d", len(comments))
	}
	if _, err := svc.GetPost(post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
