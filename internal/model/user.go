package model

import "go.mongodb.org/mongo-driver/v2/bson"

// StatusRequested marks a profile save that must always be applied,
// even when a document for the email already exists.
const StatusRequested = "Requested"

type User struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string        `bson:"email" json:"email"`
	Name   string        `bson:"name,omitempty" json:"name,omitempty"`
	Image  string        `bson:"image,omitempty" json:"image,omitempty"`
	Role   string        `bson:"role,omitempty" json:"role,omitempty"`
	Status string        `bson:"status,omitempty" json:"status,omitempty"`
}
