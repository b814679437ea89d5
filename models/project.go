package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio catalog entry. Entries are immutable once stored.
// The optional links are nil when the client left them out; an empty string
// sent by the client is stored and echoed as is.
type Project struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	GithubLink string             `bson:"githubLink" json:"githubLink"`
	ReportLink *string            `bson:"reportLink,omitempty" json:"reportLink,omitempty"`
	MediaLink  *string            `bson:"mediaLink,omitempty" json:"mediaLink,omitempty"`
	Owner      string             `bson:"owner" json:"owner"`
}

type CreateProjectRequest struct {
	Name       string  `json:"name"`
	GithubLink string  `json:"githubLink"`
	ReportLink *string `json:"reportLink"`
	MediaLink  *string `json:"mediaLink"`
	Owner      string  `json:"owner"`
}

// Validate checks the required fields. Links are not checked for URL shape.
func (r CreateProjectRequest) Validate() error {
	if r.Name == "" || r.GithubLink == "" || r.Owner == "" {
		return NewValidationError("Required fields missing")
	}
	return nil
}

func (r CreateProjectRequest) Project() Project {
	return Project{
		Name:       r.Name,
		GithubLink: r.GithubLink,
		ReportLink: r.ReportLink,
		MediaLink:  r.MediaLink,
		Owner:      r.Owner,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
