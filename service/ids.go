package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/models"
)

// parseID treats a malformed id like an unknown one: no document can match it.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return objectID, nil
}
