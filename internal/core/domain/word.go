package domain

import "time"

// Word represents a single stored word.
// Names are not unique: two words may share a name and remain
// independent entities with distinct IDs.
type Word struct {
	// ID is the unique identifier, assigned on creation.
	ID string

	// Name is the word text. Never empty.
	Name string

	// CreatedAt is when the word was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the word was last updated.
	UpdatedAt time.Time
}
