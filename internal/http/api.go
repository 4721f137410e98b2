package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-api/internal/domain"
	"blog-api/internal/service"
	"blog-api/internal/storage"
	"blog-api/internal/token"
)

// TokenVerifier checks session tokens presented by clients.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	articles    service.ArticleService
	users       service.UserService
	tokens      TokenVerifier
	images      storage.Service
	imagePrefix string
	tokenHeader string
	logger      logrus.FieldLogger
}

// NewHandler builds the blog API. images may be nil, in which case uploads are refused.
func NewHandler(
	articles service.ArticleService,
	users service.UserService,
	tokens TokenVerifier,
	images storage.Service,
	imagePrefix string,
	tokenHeader string,
	logger logrus.FieldLogger,
) *Handler {
	registerValidators()
	if tokenHeader == "" {
		tokenHeader = "Authorization"
	}
	return &Handler{
		articles:    articles,
		users:       users,
		tokens:      tokens,
		images:      images,
		imagePrefix: imagePrefix,
		tokenHeader: tokenHeader,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// titles may contain an escaped "/"
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(requestLogger(h.logger))
	router.Use(corsMiddleware(h.tokenHeader))

	auth := h.authenticate()
	editorOnly := requireCapability(domain.CapabilityEditor)
	superadminOnly := requireCapability(domain.CapabilitySuperadmin)

	articles := router.Group("/articles")
	{
		articles.GET("", h.listArticles)
		articles.GET("/:title", h.getArticle)
		articles.POST("", auth, editorOnly, h.createArticle)
		articles.PUT("/:id", auth, editorOnly, h.updateArticle)
		articles.DELETE("/:id", auth, editorOnly, h.deleteArticle)
		articles.POST("/images", auth, editorOnly, h.uploadImage)
	}

	users := router.Group("/auth")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.GET("/renew", auth, h.renew)
	}

	admin := router.Group("/admin", auth, superadminOnly)
	{
		admin.GET("/users", h.listUsers)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.NoRoute(func(c *gin.Context) {
		respond(c, http.StatusNotFound, "Route not found", nil)
	})
}
