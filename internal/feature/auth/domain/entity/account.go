package entity

// Account is the profile view returned to the account owner.
type Account struct {
	User         *User
	ContactCount int64
}

// AccountPatch carries the fields supplied to an account edit. Nil fields are
// left unchanged.
type AccountPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// IsEmpty reports whether no field was supplied.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
