package events

import "time"

type TodoEvent struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	Completed bool      `json:"completed"`
	At        time.Time `json:"at"`
}

type ProjectEvent struct {
	ID    string    `json:"id"`
	Name  string    `json:"name,omitempty"`
	Owner string    `json:"owner,omitempty"`
	At    time.Time `json:"at"`
}
