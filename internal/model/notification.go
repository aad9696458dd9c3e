package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Notification struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TaskID  string        `bson:"taskId" json:"taskId"`
	Email   string        `bson:"email,omitempty" json:"email,omitempty"`
	Message string        `bson:"message,omitempty" json:"message,omitempty"`
	Time    string        `bson:"time,omitempty" json:"time,omitempty"`
}
