package models

import "time"

// Comment is a reply attached to an article.
type Comment struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	ArticleID int64     `gorm:"column:article_id;not null" json:"article_id"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	Body      string    `gorm:"column:body;not null" json:"body"`
	Votes     int       `gorm:"column:votes;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
