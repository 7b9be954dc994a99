package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// TopicStore is the storage the topic handlers need.
type TopicStore interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	GetTopic(ctx context.Context, slug string) (models.Topic, error)
}

// TopicController serves /api/topics.
type TopicController struct {
	store TopicStore
}

// NewTopicController creates a new TopicController instance.
func NewTopicController(store TopicStore) *TopicController {
	return &TopicController{store: store}
}

// ListTopics returns every topic.
func (t *TopicController) ListTopics(ctx *gin.Context) {
	topics, err := t.store.ListTopics(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"topics": topics})
}

// GetTopic returns one topic by slug.
func (t *TopicController) GetTopic(ctx *gin.Context) {
	topic, err := t.store.GetTopic(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"topic": topic})
}
