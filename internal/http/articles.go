package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
)

type headerImageBody struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type createArticleRequest struct {
	Title       string          `json:"title"`
	Date        *time.Time      `json:"date"`
	HeaderImage headerImageBody `json:"headerImage"`
	Excerpt     string          `json:"excerpt"`
	Category    string          `json:"category"`
	Content     string          `json:"content"`
}

type updateArticleRequest struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	HeaderImage *struct {
		URL *string `json:"url"`
		Alt *string `json:"alt"`
	} `json:"headerImage"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	Content  *string `json:"content"`
}

type ArticleResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        string          `json:"date"`
	HeaderImage headerImageBody `json:"headerImage"`
	Excerpt     string          `json:"excerpt"`
	Category    string          `json:"category"`
	Content     string          `json:"content"`
}

func articleToResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Date:        a.Date.UTC().Format(time.RFC3339),
		HeaderImage: headerImageBody{URL: a.HeaderImage.URL, Alt: a.HeaderImage.Alt},
		Excerpt:     a.Excerpt,
		Category:    a.Category,
		Content:     a.Content,
	}
}

func (h *Handler) listArticles(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]ArticleResponse, len(articles))
	for i := range articles {
		resp[i] = articleToResponse(articles[i])
	}
	respond(c, http.StatusOK, "Our articles", gin.H{"data": resp})
}

func (h *Handler) getArticle(c *gin.Context) {
	article, err := h.articles.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Article found", gin.H{"data": articleToResponse(*article)})
}

func (h *Handler) createArticle(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	article := domain.Article{
		Title:       req.Title,
		HeaderImage: domain.HeaderImage{URL: req.HeaderImage.URL, Alt: req.HeaderImage.Alt},
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Content:     req.Content,
	}
	if req.Date != nil {
		article.Date = *req.Date
	}

	created, err := h.articles.Create(c.Request.Context(), identity, article)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Article published", gin.H{"articulo": articleToResponse(*created)})
}

func (h *Handler) updateArticle(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	patch := domain.ArticlePatch{
		Title:    req.Title,
		Date:     req.Date,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Content:  req.Content,
	}
	if req.HeaderImage != nil {
		patch.HeaderImageURL = req.HeaderImage.URL
		patch.HeaderImageAlt = req.HeaderImage.Alt
	}

	updated, err := h.articles.Update(c.Request.Context(), identity, c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Article updated", gin.H{"articulo": articleToResponse(*updated)})
}

func (h *Handler) deleteArticle(c *gin.Context) {
	identity, _ := identityFrom(c)

	deleted, err := h.articles.Delete(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.removeImage(c.Request.Context(), deleted.HeaderImage.URL)
	respond(c, http.StatusOK, "Article deleted", gin.H{"data": articleToResponse(*deleted)})
}
