package models

// Topic is a subject articles are filed under. Topics are managed outside the API.
type Topic struct {
	Slug        string `gorm:"column:slug;primaryKey" json:"slug"`
	Description string `gorm:"column:description" json:"description"`
}

func (Topic) TableName() string { return "topics" }
