// Package entity defines the domain entities for the contact feature.
package entity

import "time"

// Contact is an address-book entry. It always belongs to exactly one user.
type Contact struct {
	ID        uint
	UserID    uint
	Name      string
	Phone     string
	Email     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactPatch carries the fields supplied to an update. Nil fields keep
// their stored value.
type ContactPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// IsEmpty reports whether no field was supplied.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Address == nil
}

// Apply merges the supplied fields into c.
func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.Address != nil {
		c.Address = p.Address
	}
}
