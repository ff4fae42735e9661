// Package dto defines data transfer objects for the contact feature's HTTP transport layer.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"contact_backend/internal/feature/contact/domain/entity"
)

// PhoneNumber accepts either a JSON string or a JSON number. Whether the
// value is a valid phone is left to the "phone" binding rule.
type PhoneNumber string

func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PhoneNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("phone must be a string or a number: %w", err)
	}
	*p = PhoneNumber(n.String())
	return nil
}

// CreateContactReq is the body of POST /contact.
type CreateContactReq struct {
	Name    string      `json:"name" binding:"required"`
	Phone   PhoneNumber `json:"phone" binding:"required,phone"`
	Email   *string     `json:"email" binding:"omitnil,email"`
	Address *string     `json:"address"`
}

func (r *CreateContactReq) ToEntity() *entity.Contact {
	return &entity.Contact{
		Name:    r.Name,
		Phone:   string(r.Phone),
		Email:   r.Email,
		Address: r.Address,
	}
}

// UpdateContactReq is the body of PUT /contact/:id. Only present fields change.
type UpdateContactReq struct {
	Name    *string      `json:"name" binding:"omitnil,min=1"`
	Phone   *PhoneNumber `json:"phone" binding:"omitnil,phone"`
	Email   *string      `json:"email" binding:"omitnil,email"`
	Address *string      `json:"address"`
}

func (r *UpdateContactReq) ToPatch() entity.ContactPatch {
	patch := entity.ContactPatch{
		Name:    r.Name,
		Email:   r.Email,
		Address: r.Address,
	}
	if r.Phone != nil {
		s := string(*r.Phone)
		patch.Phone = &s
	}
	return patch
}

// ContactRes is the public view of a contact.
type ContactRes struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContactRes(c *entity.Contact) ContactRes {
	return ContactRes{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewContactList converts a slice of contacts. An empty input yields an
// empty (not null) JSON array.
func NewContactList(cs []entity.Contact) []ContactRes {
	out := make([]ContactRes, 0, len(cs))
	for i := range cs {
		out = append(out, NewContactRes(&cs[i]))
	}
	return out
}
