package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/api"
	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/transport/http/dto"
	jwtmw "contact_backend/internal/platform/jwt"
	"contact_backend/internal/shared/apperr"
)

// AccountUsecase defines the account operations used by the handler.
type AccountUsecase interface {
	GetAccount(ctx context.Context, userID uint) (*entity.Account, error)
	EditAccount(ctx context.Context, userID uint, patch entity.AccountPatch) (*entity.User, error)
	DeleteAccount(ctx context.Context, p *entity.Principal) error
}

// AccountHandler serves the caller's own account.
type AccountHandler struct {
	accounts AccountUsecase
	log      *zap.Logger
}

func NewAccountHandler(accounts AccountUsecase, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, log: log}
}

// Get handles GET /api/account.
func (h *AccountHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	acc, err := h.accounts.GetAccount(c.Request.Context(), userID)
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "account retrieved", dto.NewAccountRes(acc))
}

// Edit handles PUT /api/account/edit.
func (h *AccountHandler) Edit(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	var req dto.EditAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, h.log, api.BindError(err))
		return
	}
	if !req.PasswordConfirmed() {
		api.Fail(c, h.log, domain.ErrPasswordMismatch)
		return
	}

	user, err := h.accounts.EditAccount(c.Request.Context(), userID, req.ToPatch())
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "account updated", dto.NewUserRes(user))
}

// Delete handles DELETE /api/account.
func (h *AccountHandler) Delete(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), p); err != nil {
		api.Fail(c, h.log, err)
		return
	}
	h.log.Info("account deleted", zap.Uint("user_id", p.UserID()))
	api.OK(c, http.StatusOK, "account deleted", nil)
}
