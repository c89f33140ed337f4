package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// User roles.
const (
	RoleOwner  = "OWNER"
	RolePublic = "PUBLIC"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User is the model stored under the 'kh_user' key.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
