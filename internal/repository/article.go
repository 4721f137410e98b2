package repository

import (
	"context"

	"blog-api/internal/domain"
)

// ArticleRepository exposes persistence operations for articles.
type ArticleRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, article *domain.Article) error
	List(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetByTitle(ctx context.Context, title string) (*domain.Article, error)
	// Update applies patch to the article with id and returns the updated record.
	Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error)
	// Delete removes the article with id and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.Article, error)
}
