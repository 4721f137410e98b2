package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/service"
)

const (
	msgInternal      = "Unexpected error. Contact the administrator"
	msgBadRequest    = "Bad request"
	msgInvalidBody   = "Malformed request body"
	msgTokenNotFound = "Token not found"
	msgTokenInvalid  = "Invalid token"
	msgForbidden     = "Access denied"
)

func respond(c *gin.Context, status int, msg string, extra gin.H) {
	body := gin.H{"ok": status < http.StatusBadRequest, "msg": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func abortWith(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "msg": msg})
}

// bindFailed answers a request whose body could not be bound.
func bindFailed(c *gin.Context, err error) {
	if fields, ok := bindingErrors(err); ok {
		respond(c, http.StatusBadRequest, msgBadRequest, gin.H{"errors": fields})
		return
	}
	respond(c, http.StatusBadRequest, msgInvalidBody, nil)
}

// fail translates a service error into its envelope. Anything unrecognised is logged and
// reported as a 500 without detail.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respond(c, http.StatusBadRequest, msgBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, service.ErrDuplicateAccount):
		respond(c, http.StatusBadRequest, "That email is already registered", nil)
	case errors.Is(err, service.ErrPasswordMismatch):
		respond(c, http.StatusBadRequest, "Password confirmation does not match", nil)
	case errors.Is(err, service.ErrRoleNotAllowed):
		respond(c, http.StatusBadRequest, "That role cannot be requested at registration", nil)
	case errors.Is(err, service.ErrUnknownAccount):
		respond(c, http.StatusBadRequest, "User does not exist", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respond(c, http.StatusBadRequest, "Password does not match", nil)
	case errors.Is(err, service.ErrDuplicateArticle):
		respond(c, http.StatusBadRequest, "Bad request. The article is already in the database", nil)
	case errors.Is(err, service.ErrArticleNotFound):
		// 400 rather than 404 is what existing clients expect
		respond(c, http.StatusBadRequest, "Bad request. Article not found", nil)
	case errors.Is(err, service.ErrForbidden):
		respond(c, http.StatusForbidden, "Access denied. Only editors can manage articles", nil)
	default:
		h.logger.WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed")
		respond(c, http.StatusInternalServerError, msgInternal, nil)
	}
}
