package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

const createArticlesTable = `
CREATE TABLE IF NOT EXISTS articles (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	date DATETIME NOT NULL,
	header_image_url TEXT NOT NULL DEFAULT '',
	header_image_alt TEXT NOT NULL DEFAULT '',
	excerpt TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT ''
);
`

const selectArticleColumns = `SELECT id, title, date, header_image_url, header_image_alt, excerpt, category, content FROM articles`

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Date.IsZero() {
		article.Date = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO articles (id, title, date, header_image_url, header_image_alt, excerpt, category, content)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		article.ID,
		article.Title,
		article.Date.UTC(),
		article.HeaderImage.URL,
		article.HeaderImage.Alt,
		article.Excerpt,
		article.Category,
		article.Content,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert article %q: %w", article.Title, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx, selectArticleColumns+` ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return scanArticle(r.db.QueryRowContext(ctx, selectArticleColumns+` WHERE id = ?`, id))
}

func (r *ArticleRepository) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	return scanArticle(r.db.QueryRowContext(ctx, selectArticleColumns+` WHERE title = ?`, title))
}

func (r *ArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	current, err := scanArticle(tx.QueryRowContext(ctx, selectArticleColumns+` WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*current)

	_, err = tx.ExecContext(ctx, `
UPDATE articles
SET title=?, date=?, header_image_url=?, header_image_alt=?, excerpt=?, category=?, content=?
WHERE id=?`,
		updated.Title,
		updated.Date.UTC(),
		updated.HeaderImage.URL,
		updated.HeaderImage.Alt,
		updated.Excerpt,
		updated.Category,
		updated.Content,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update article %s: %w", id, repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit article update: %w", err)
	}
	return &updated, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	article, err := scanArticle(tx.QueryRowContext(ctx, selectArticleColumns+` WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id=?`, id)
	if err != nil {
		return nil, fmt.Errorf("delete article: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("article delete rows affected: %w", err)
	}
	if aff == 0 {
		return nil, repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit article delete: %w", err)
	}
	return article, nil
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var article domain.Article
	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Date,
		&article.HeaderImage.URL,
		&article.HeaderImage.Alt,
		&article.Excerpt,
		&article.Category,
		&article.Content,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	article.Date = article.Date.Local()
	return &article, nil
}
