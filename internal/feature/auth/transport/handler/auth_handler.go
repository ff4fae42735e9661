// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/api"
	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/transport/http/dto"
	jwtmw "contact_backend/internal/platform/jwt"
	"contact_backend/internal/shared/apperr"
)

// AuthUsecase defines the credential operations used by the handler.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.IssuedToken, error)
	Logout(ctx context.Context, p *entity.Principal) error
}

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	auth AuthUsecase
	log  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, h.log, api.BindError(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.log.Info("register rejected", zap.String("reason", string(apperr.KindOf(err))), zap.String("remote_addr", c.ClientIP()))
		api.Fail(c, h.log, err)
		return
	}

	h.log.Info("user registered", zap.Uint("user_id", user.ID))
	api.OK(c, http.StatusCreated, "User "+user.Name+" created successfully", dto.NewUserRes(user))
}

// Login handles POST /api/login. Unknown email and wrong password produce
// the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, h.log, api.BindError(err))
		return
	}

	issued, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Info("login rejected", zap.String("reason", string(apperr.KindOf(err))), zap.String("remote_addr", c.ClientIP()))
		api.Fail(c, h.log, err)
		return
	}

	h.log.Info("user logged in", zap.Uint("user_id", issued.User.ID))
	api.OK(c, http.StatusOK, "login successful", dto.TokenRes{
		Token:     issued.Token,
		TokenType: "Bearer",
		ExpiresAt: issued.ExpiresAt,
		ExpiresIn: int64(time.Until(issued.ExpiresAt).Seconds()),
	})
}

// Logout handles POST /api/logout. Only the presented token is revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), p); err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "logged out", nil)
}
