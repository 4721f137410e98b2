package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newArticleRepo(t *testing.T) repository.ArticleRepository {
	t.Helper()
	repo := NewArticleRepository(newTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func sampleArticle(title string) *domain.Article {
	return &domain.Article{
		Title:       title,
		HeaderImage: domain.HeaderImage{URL: "https://img.example.com/1.png", Alt: "cover"},
		Excerpt:     "short",
		Category:    "news",
		Content:     "long body",
	}
}

func TestArticleLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	article := sampleArticle("Hello")
	require.NoError(t, repo.Create(ctx, article))
	require.NotEmpty(t, article.ID)
	require.False(t, article.Date.IsZero())

	got, err := repo.GetByTitle(ctx, "Hello")
	require.NoError(t, err)
	assert.Equal(t, article.ID, got.ID)
	assert.Equal(t, "cover", got.HeaderImage.Alt)
	assert.WithinDuration(t, article.Date, got.Date, time.Second)

	byID, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", byID.Title)

	content := "edited body"
	updated, err := repo.Update(ctx, article.ID, domain.ArticlePatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited body", updated.Content)
	assert.Equal(t, "Hello", updated.Title)

	reread, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited body", reread.Content)

	deleted, err := repo.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.ID, deleted.ID)

	_, err = repo.GetByTitle(ctx, "Hello")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticleDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	require.NoError(t, repo.Create(ctx, sampleArticle("Same")))
	err := repo.Create(ctx, sampleArticle("Same"))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestArticleUpdateToExistingTitle(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	first := sampleArticle("First")
	second := sampleArticle("Second")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	title := "First"
	_, err := repo.Update(ctx, second.ID, domain.ArticlePatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestArticleMissingID(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	title := "x"
	_, err := repo.Update(ctx, "missing", domain.ArticlePatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticleListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	for _, title := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, sampleArticle(title)))
	}

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "c", articles[0].Title)
	assert.Equal(t, "a", articles[1].Title)
	assert.Equal(t, "b", articles[2].Title)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{Email: "ana@example.com", PasswordHash: "hash", Nombre: "Ana"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleMember, user.Role)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Nombre)

	err = repo.Create(ctx, &domain.User{Email: "ana@example.com", PasswordHash: "other", Nombre: "Other"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "hash", users[0].PasswordHash)
}

func TestArticleEmptyPatch(t *testing.T) {
	ctx := context.Background()
	repo := newArticleRepo(t)

	article := sampleArticle("Untouched")
	require.NoError(t, repo.Create(ctx, article))

	got, err := repo.Update(ctx, article.ID, domain.ArticlePatch{})
	require.NoError(t, err)
	assert.Equal(t, "Untouched", got.Title)
	assert.Equal(t, "long body", got.Content)

	_, err = repo.Update(ctx, "missing", domain.ArticlePatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
