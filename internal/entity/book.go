package entity

import "time"

// Reading status values stored on a book. The strings match what the
// frontend sends and displays, so they are part of the API contract.
const (
	StatusToRead  = "To Read"
	StatusReading = "Reading"
	StatusRead    = "Read"
)

type Book struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	GoogleBookID string    `json:"googleBookId,omitempty"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	CoverURL     string    `json:"coverUrl"`
	Status       string    `json:"status"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
