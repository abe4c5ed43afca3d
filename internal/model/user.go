package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the profile document persisted per account.
//
// Password carries the submitted plaintext through validation and is replaced
// with a bcrypt hash before any write; stored documents only ever hold the
// hash. It never marshals to JSON.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName  string             `bson:"firstName" json:"firstName" validate:"required,min=2,max=30"`
	LastName   string             `bson:"lastName" json:"lastName" validate:"required,min=1,max=30"`
	Age        int                `bson:"age" json:"age" validate:"required,min=1,max=120"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Password   string             `bson:"password" json:"-" validate:"required,min=6"`
	MobileNo   string             `bson:"mobileNo" json:"mobileNo" validate:"required,min=10,max=15"`
	ProfilePic string             `bson:"profilePic" json:"profilePic"`
}
