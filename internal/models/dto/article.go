package dto

import "github.com/hongminglow/blog-be/internal/models"

// ArticleRequest is the body of create and update calls.
type ArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateArticleResponse struct {
	ArticleID int64 `json:"article_id"`
}

type ArticleResponse struct {
	Article models.Article `json:"article"`
}

type ArticleListResponse struct {
	Articles []models.Article `json:"articles"`
}
