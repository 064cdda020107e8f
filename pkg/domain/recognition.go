package domain

import "time"

// Concept is a single label returned by the image classifier.
type Concept struct {
	Name  string
	Value float64 // confidence in [0, 1]
}

// Recognition is a persisted record of one photo classification.
type Recognition struct {
	ID        int64     `bun:",pk,autoincrement"`
	ChatID    int64     `bun:"chat_id"`
	Label     string    `bun:"label"`
	Labels    []string  `bun:"labels,array"`
	CreatedAt time.Time `bun:"created_at"`
}
