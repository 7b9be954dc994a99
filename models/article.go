package models

import "time"

// DefaultArticleImgURL is stored when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// ArticleSummary is the list projection of an article: every column except body,
// plus the number of comments attached to it.
type ArticleSummary struct {
	ArticleID     int64     `gorm:"column:article_id;primaryKey" json:"article_id"`
	Author        string    `gorm:"column:author" json:"author"`
	Title         string    `gorm:"column:title" json:"title"`
	Topic         string    `gorm:"column:topic" json:"topic"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"column:votes" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`
	CommentCount  int       `gorm:"column:comment_count" json:"comment_count"`
}

// Article is the full projection returned for a single article.
type Article struct {
	ArticleSummary
	Body string `gorm:"column:body" json:"body"`
}

// NewArticle holds the caller-supplied columns of an article insert.
// An empty ArticleImgURL leaves the column to its database default.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}
