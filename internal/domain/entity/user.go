package entity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
)

// PasswordCost is the bcrypt cost used when hashing passwords. Tests lower it.
var PasswordCost = bcrypt.DefaultCost

type User struct {
	Base
	FirstName string `json:"first_name" validate:"required,notblank"`
	LastName  string `json:"last_name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email,max=254"`
	// Password is always a bcrypt hash once the user has been constructed.
	Password string `json:"-" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type UserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UserPatch lists the user fields a caller may change. Nil means unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

var _ Record[*User] = (*User)(nil)

func NewUser(p UserParams) (*User, error) {
	if p.Password == "" {
		return nil, domerrors.NewValidationError("password", "password is required")
	}
	hashed, err := hashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Base:      newBase(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Password:  hashed,
		IsAdmin:   p.IsAdmin,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error { return validateStruct(u) }

func (u *User) Clone() *User {
	c := *u
	return &c
}

// Apply changes u only when the patched user is still valid.
func (u *User) Apply(p UserPatch) error {
	next := u.Clone()
	if p.FirstName != nil {
		next.FirstName = *trimmed(p.FirstName)
	}
	if p.LastName != nil {
		next.LastName = *trimmed(p.LastName)
	}
	if p.Email != nil {
		next.Email = *p.Email
	}
	if p.IsAdmin != nil {
		next.IsAdmin = *p.IsAdmin
	}
	if p.Password != nil {
		if *p.Password == "" {
			return domerrors.NewValidationError("password", "password is required")
		}
		hashed, err := hashPassword(*p.Password)
		if err != nil {
			return err
		}
		next.Password = hashed
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*u = *next
	return nil
}

// EnsurePasswordHashed hashes Password in place when it holds plain text.
func (u *User) EnsurePasswordHashed() error {
	if u.Password == "" {
		return domerrors.NewValidationError("password", "password is required")
	}
	hashed, err := hashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "is_admin":
		return u.IsAdmin, true
	}
	return u.Base.attribute(name)
}

func hashPassword(value string) (string, error) {
	if looksLikeBcrypt(value) {
		return value, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(value), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domerrors.NewValidationError("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
