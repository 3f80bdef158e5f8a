// Package user holds the identity the session layer hands to the order core.
// Authentication happens elsewhere; the core only reads the fields below and
// respects the administrator flag.
package user

import (
	"errors"
	"strings"

	"grabgo/internal/pkg/errs"
	"grabgo/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when validating a zero-value User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the authenticated caller. Email is the owner key of orders.
type User struct { //nolint:recvcheck //using for validation
	id      string
	name    string
	email   string
	photo   string
	phone   string
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewUser builds an identity. Email is required; photo and phone may be empty.
func NewUser(id, name, email, photo, phone string, isAdmin bool) (User, error) {
	u := User{
		id:      strings.TrimSpace(id),
		name:    strings.TrimSpace(name),
		photo:   strings.TrimSpace(photo),
		phone:   strings.TrimSpace(phone),
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := u.setEmail(email); err != nil {
		return User{}, err
	}

	return u, nil
}

// ID returns the session identifier of the user.
func (u User) ID() string {
	return u.id
}

// Name returns the display name.
func (u User) Name() string {
	return u.name
}

// Email returns the owner key used to partition order history.
func (u User) Email() string {
	return u.email
}

// Photo returns the avatar URL, if any.
func (u User) Photo() string {
	return u.photo
}

// Phone returns the contact number, if any.
func (u User) Phone() string {
	return u.phone
}

// IsAdmin reports whether the caller may mutate any order.
func (u User) IsAdmin() bool {
	return u.isAdmin
}

// Validate rejects zero-value users.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}
