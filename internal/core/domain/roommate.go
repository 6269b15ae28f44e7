package domain

import "errors"

var ErrRoommateNotFound = errors.New("roommate not found")

// Roommate is a named person a user splits bills with. Avatar holds a single
// display initial.
type Roommate struct {
	ID     int    `json:"id" bson:"_id"`
	UserID int    `json:"userId" bson:"user_id"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}
