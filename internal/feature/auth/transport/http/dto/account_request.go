package dto

import "contact_backend/internal/feature/auth/domain/entity"

// EditAccountReq is the body of PUT /account/edit. Absent fields are left
// unchanged; a present field must still be valid.
type EditAccountReq struct {
	Name                 *string `json:"name" binding:"omitnil,min=1"`
	Email                *string `json:"email" binding:"omitnil,email"`
	Password             *string `json:"password" binding:"omitnil,min=6,max=72"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

// PasswordConfirmed reports whether a password change carries a matching confirmation.
func (r *EditAccountReq) PasswordConfirmed() bool {
	if r.Password == nil {
		return r.PasswordConfirmation == nil
	}
	return r.PasswordConfirmation != nil && *r.PasswordConfirmation == *r.Password
}

// ToPatch converts the request into a domain patch.
func (r *EditAccountReq) ToPatch() entity.AccountPatch {
	return entity.AccountPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// AccountRes is the caller's profile.
type AccountRes struct {
	UserRes
	ContactCount int64 `json:"contact_count"`
}

// NewAccountRes converts an account entity.
func NewAccountRes(a *entity.Account) AccountRes {
	return AccountRes{UserRes: NewUserRes(a.User), ContactCount: a.ContactCount}
}
