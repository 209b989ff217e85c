package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered user of the finance tracker.
//
// Every other resource belongs to exactly one user and is only ever
// visible to that user.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the username.
//
// Usernames are stored lowercase so that uniqueness is case insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a cleartext password against the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
