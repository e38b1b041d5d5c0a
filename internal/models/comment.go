package models

type Comment struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
}

type CommentInput struct {
	EventID string
	Author  string
	Content string
}
