package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver represents a truck driver delivering orders
type Driver struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Address        string             `bson:"address" json:"address"`
	Phone          string             `bson:"phone" json:"phone"`
	DrivingLicense string             `bson:"driving_license" json:"drivingLicense"`
	Password       string             `bson:"password,omitempty" json:"-"`
	IsDeleted      bool               `bson:"is_deleted" json:"isDeleted"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DriverRegistration is the body of POST /driver/register
type DriverRegistration struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	DrivingLicense string `json:"drivingLicense"`
	Password       string `json:"password"`
}

// DriverUpdate carries the fields an edit may change; nil means unchanged.
type DriverUpdate struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	DrivingLicense *string `json:"drivingLicense"`
}

// DriverLogin is the body of POST /driver/login
type DriverLogin struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// DriverSession is returned by a successful driver login
type DriverSession struct {
	Driver *Driver `json:"driver"`
	Token  string  `json:"token"`
}
