package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User mirrors a document in the 'users' collection. The password hash is
// excluded from JSON here and absent from PublicUser, so it can never reach
// an HTTP response.
type User struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Email            string        `bson:"email" json:"email"`
	Username         string        `bson:"username" json:"username"`
	HashedPassword   string        `bson:"hashed_password" json:"-"`
	IsActive         bool          `bson:"is_active" json:"is_active"`
	IsAdmin          bool          `bson:"is_admin" json:"is_admin"`
	MotiCoins        int           `bson:"moti_coins" json:"moti_coins"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	LastLogin        *time.Time    `bson:"last_login,omitempty" json:"last_login"`
	ProfileCompleted bool          `bson:"profile_completed" json:"profile_completed"`
}

// PublicUser is the external projection of a User: the ObjectID rendered as
// its hex string, and no credential material.
type PublicUser struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	IsActive         bool       `json:"is_active"`
	IsAdmin          bool       `json:"is_admin"`
	MotiCoins        int        `json:"moti_coins"`
	CreatedAt        time.Time  `json:"created_at"`
	LastLogin        *time.Time `json:"last_login"`
	ProfileCompleted bool       `json:"profile_completed"`
}

// Public converts the stored entity into its external projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID.Hex(),
		Email:            u.Email,
		Username:         u.Username,
		IsActive:         u.IsActive,
		IsAdmin:          u.IsAdmin,
		MotiCoins:        u.MotiCoins,
		CreatedAt:        u.CreatedAt,
		LastLogin:        u.LastLogin,
		ProfileCompleted: u.ProfileCompleted,
	}
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
