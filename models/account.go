package models

import "time"

// Account represents a locally registered user.
type Account struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password" json:"-"`
	IsVerified   bool   `bson:"isVerified" json:"isVerified"`

	// Verification token fields are cleared once the email is verified.
	VerificationToken        string     `bson:"verificationToken,omitempty" json:"-"`
	VerificationTokenExpires *time.Time `bson:"verificationTokenExpires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GoogleAccount represents a user authenticated through Google sign-in.
type GoogleAccount struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Email    string `bson:"email" json:"email"`
	GoogleID string `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
