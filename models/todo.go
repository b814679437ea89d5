package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Text      string             `bson:"text" json:"text"`
	Completed bool               `bson:"completed" json:"completed"`
}

type CreateTodoRequest struct {
	Text string `json:"text"`
}

func (r CreateTodoRequest) Validate() error {
	if r.Text == "" {
		return NewValidationError("Todo text is required")
	}
	return nil
}

type ToggleResponse struct {
	Message   string `json:"message"`
	Completed bool   `json:"completed"`
}
