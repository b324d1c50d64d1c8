package models

import "time"

// Article is a blog post owned by exactly one user. Author carries the
// owner's username and is populated on reads only.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID is the article's author.
func (a Article) OwnedBy(userID int64) bool {
	return a.AuthorID == userID
}
