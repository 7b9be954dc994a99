package repository

import (
	"context"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// ListTopics returns every topic ordered by slug.
func (r *Repository) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := r.conn(ctx).Raw("SELECT slug, description FROM topics ORDER BY slug").Scan(&topics).Error; err != nil {
		return nil, utils.ClassifyDBError(err)
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return topics, nil
}

// GetTopic returns the topic with slug or NotFound(Topic).
func (r *Repository) GetTopic(ctx context.Context, slug string) (models.Topic, error) {
	var topic models.Topic
	err := r.scanOne(ctx, utils.EntityTopic, &topic, "SELECT slug, description FROM topics WHERE slug = ?", slug)
	return topic, err
}

// CheckTopicExists returns NotFound(Topic) when slug is unknown. An empty slug means
// no topic filter was requested and always succeeds.
func (r *Repository) CheckTopicExists(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	return r.exists(ctx, utils.EntityTopic, "SELECT EXISTS (SELECT 1 FROM topics WHERE slug = ?)", slug)
}
