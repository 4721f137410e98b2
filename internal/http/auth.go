package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/service"
)

type registerRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,blogpassword"`
	PassConfirm string     `json:"passConfirm" binding:"required"`
	Nombre      string     `json:"nombre" binding:"required"`
	Role        string     `json:"role" binding:"omitempty,oneof=member editor"`
	Date        *time.Time `json:"date"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
	Date   string `json:"date"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Nombre: u.Nombre,
		Role:   u.Role,
		Date:   u.Date.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		PassConfirm: req.PassConfirm,
		Nombre:      req.Nombre,
		Role:        req.Role,
		Date:        req.Date,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "New user registered", gin.H{"data": userToResponse(*user)})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	session, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Logged in", gin.H{
		"uid":    session.UID,
		"email":  session.Email,
		"nombre": session.Nombre,
		"token":  session.Token,
	})
}

func (h *Handler) renew(c *gin.Context) {
	identity, _ := identityFrom(c)

	session, err := h.users.Renew(identity)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, "Token renewed", gin.H{
		"uid":    session.UID,
		"nombre": session.Nombre,
		"token":  session.Token,
	})
}
