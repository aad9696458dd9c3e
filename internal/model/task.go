package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Task struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string        `bson:"email" json:"email"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Deadline    string        `bson:"deadline" json:"deadline"`
	Priority    string        `bson:"priority" json:"priority"`
	Status      string        `bson:"status" json:"status"`
}
