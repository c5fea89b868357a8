package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted by the strength check.
const MinPasswordLength = 6

// User represents a registered account. Email is the de-facto unique key.
type User struct {
	ID           string
	Name         string
	Email        string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser builds a user from raw input. It does not validate anything.
func NewUser(name, email, password string) *User {
	return &User{Name: name, Email: email, Password: password}
}

// IsValidEmail performs a minimal structural check of the local@domain.tld shape.
// It is deliberately looser than RFC 5322.
func (u *User) IsValidEmail() bool {
	local, domain, ok := strings.Cut(u.Email, "@")
	if !ok || local == "" {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 {
		return false
	}
	return dot < len(domain)-1
}

// IsStrongPassword reports whether the password is at least MinPasswordLength
// characters long and contains a digit.
func (u *User) IsStrongPassword() bool {
	if utf8.RuneCountInString(u.Password) < MinPasswordLength {
		return false
	}
	return strings.ContainsAny(u.Password, "0123456789")
}
