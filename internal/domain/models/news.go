package models

type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	PublishedAt string `json:"published_at"`
	CreatedBy   int64  `json:"created_by"`
}

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
