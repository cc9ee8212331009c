package models

import "time"

type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	ImageURL  string    `json:"imageUrl"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
