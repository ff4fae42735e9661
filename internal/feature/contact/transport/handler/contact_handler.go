// Package handler provides HTTP handlers for the contact feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/api"
	"contact_backend/internal/feature/contact/domain"
	"contact_backend/internal/feature/contact/domain/entity"
	"contact_backend/internal/feature/contact/transport/http/dto"
	jwtmw "contact_backend/internal/platform/jwt"
	"contact_backend/internal/shared/apperr"
)

// ContactUsecase defines the contact operations used by the handler.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type ContactUsecase interface {
	Create(ctx context.Context, ownerID uint, c *entity.Contact) (*entity.Contact, error)
	Get(ctx context.Context, ownerID, id uint) (*entity.Contact, error)
	List(ctx context.Context, ownerID uint) ([]entity.Contact, error)
	Update(ctx context.Context, ownerID, id uint, patch entity.ContactPatch) (*entity.Contact, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// ContactHandler handles the /contact endpoints. The owner is always the
// authenticated caller.
type ContactHandler struct {
	uc  ContactUsecase
	log *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(uc ContactUsecase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, log: log}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c *gin.Context) {
	ownerID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	var req dto.CreateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, h.log, api.BindError(err))
		return
	}

	created, err := h.uc.Create(c.Request.Context(), ownerID, req.ToEntity())
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusCreated, "contact created", dto.NewContactRes(created))
}

// List handles GET /api/contact.
func (h *ContactHandler) List(c *gin.Context) {
	ownerID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return
	}

	contacts, err := h.uc.List(c.Request.Context(), ownerID)
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "contacts retrieved", dto.NewContactList(contacts))
}

// Get handles GET /api/contact/:id.
func (h *ContactHandler) Get(c *gin.Context) {
	ownerID, id, ok := h.target(c)
	if !ok {
		return
	}

	contact, err := h.uc.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "contact retrieved", dto.NewContactRes(contact))
}

// Update handles PUT /api/contact/:id.
func (h *ContactHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.UpdateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, h.log, api.BindError(err))
		return
	}

	contact, err := h.uc.Update(c.Request.Context(), ownerID, id, req.ToPatch())
	if err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.OK(c, http.StatusOK, "contact updated", dto.NewContactRes(contact))
}

// Delete handles DELETE /api/contact/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), ownerID, id); err != nil {
		api.Fail(c, h.log, err)
		return
	}
	api.NoContent(c)
}

// target resolves the caller and the :id path parameter. An id that is not
// a positive integer cannot name any contact, so it is reported as not found.
func (h *ContactHandler) target(c *gin.Context) (ownerID, id uint, ok bool) {
	ownerID, ok = jwtmw.UserIDFrom(c)
	if !ok {
		api.Fail(c, h.log, apperr.ErrUnauthorized)
		return 0, 0, false
	}
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || parsed == 0 {
		api.Fail(c, h.log, domain.ErrContactNotFound)
		return 0, 0, false
	}
	return ownerID, uint(parsed), true
}
