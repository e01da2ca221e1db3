package model

import (
	"time"

	"github.com/google/uuid"
)

// Website rows are deduplicated by normalized URL; one row per site no
// matter how many reviews target it.
type Website struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
