package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents a back-office administrator
type Admin struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone" json:"phone"`
	Password          string             `bson:"password,omitempty" json:"-"`
	IsVerified        bool               `bson:"is_verified" json:"isVerified"`
	VerifyToken       string             `bson:"verify_token,omitempty" json:"-"`
	VerifyTokenExpiry *time.Time         `bson:"verify_token_expiry,omitempty" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// AdminRegistration is the body of POST /admin/register
type AdminRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AdminSession is returned by a successful admin login
type AdminSession struct {
	Admin *Admin `json:"admin"`
	Token string `json:"token"`
}
