package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/repository"
	"blog-api/internal/repository/sqlite"
	"blog-api/internal/token"
)

const testSecret = "test-secret"

type fixture struct {
	users    repository.UserRepository
	articles repository.ArticleRepository
	tokens   *token.Service
	userSvc  UserService
	artSvc   ArticleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newFixtureWithDB(t, db)
}

func newFixtureWithDB(t *testing.T, db *sql.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	users := sqlite.NewUserRepository(db)
	articles := sqlite.NewArticleRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, articles.Init(ctx))

	tokens := token.NewService(testSecret, time.Hour)
	userSvc := NewUserService(users, tokens)
	userSvc.(*userService).cost = bcrypt.MinCost

	return &fixture{
		users:    users,
		articles: articles,
		tokens:   tokens,
		userSvc:  userSvc,
		artSvc:   NewArticleService(articles),
	}
}
