package service

import (
	"context"
	"errors"
	"strings"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// ArticleService coordinates article operations and their editor gate.
type ArticleService interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByTitle(ctx context.Context, title string) (*domain.Article, error)
	Create(ctx context.Context, caller domain.Identity, article domain.Article) (*domain.Article, error)
	Update(ctx context.Context, caller domain.Identity, id string, patch domain.ArticlePatch) (*domain.Article, error)
	Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Article, error)
}

type articleService struct {
	articles repository.ArticleRepository
}

func NewArticleService(articles repository.ArticleRepository) ArticleService {
	return &articleService{articles: articles}
}

func (s *articleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

func (s *articleService) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	article, err := s.articles.GetByTitle(ctx, title)
	if err != nil {
		return nil, mapArticleErr(err)
	}
	return article, nil
}

func (s *articleService) Create(ctx context.Context, caller domain.Identity, article domain.Article) (*domain.Article, error) {
	if !caller.IsEditor() {
		return nil, ErrForbidden
	}
	if err := validateArticle(article); err != nil {
		return nil, err
	}

	article.ID = ""
	if err := s.articles.Create(ctx, &article); err != nil {
		return nil, mapArticleErr(err)
	}
	return &article, nil
}

func (s *articleService) Update(ctx context.Context, caller domain.Identity, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	if !caller.IsEditor() {
		return nil, ErrForbidden
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	article, err := s.articles.Update(ctx, id, patch)
	if err != nil {
		return nil, mapArticleErr(err)
	}
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Article, error) {
	if !caller.IsEditor() {
		return nil, ErrForbidden
	}
	article, err := s.articles.Delete(ctx, id)
	if err != nil {
		return nil, mapArticleErr(err)
	}
	return article, nil
}

func mapArticleErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrArticleNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicateArticle
	default:
		return err
	}
}

func validateArticle(a domain.Article) error {
	verr := &ValidationError{}
	required := []struct {
		field, value string
	}{
		{"title", a.Title},
		{"headerImage.url", a.HeaderImage.URL},
		{"headerImage.alt", a.HeaderImage.Alt},
		{"excerpt", a.Excerpt},
		{"category", a.Category},
		{"content", a.Content},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.add(r.field, r.field+" is required")
		}
	}
	return verr.orNil()
}

func validatePatch(p domain.ArticlePatch) error {
	verr := &ValidationError{}
	optional := []struct {
		field string
		value *string
	}{
		{"title", p.Title},
		{"headerImage.url", p.HeaderImageURL},
		{"headerImage.alt", p.HeaderImageAlt},
		{"excerpt", p.Excerpt},
		{"category", p.Category},
		{"content", p.Content},
	}
	for _, o := range optional {
		if o.value != nil && strings.TrimSpace(*o.value) == "" {
			verr.add(o.field, o.field+" must not be empty")
		}
	}
	return verr.orNil()
}
