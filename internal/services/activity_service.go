package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// ActivityPublisher forwards activity entries to the event bus
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, entry *models.ActivityLog) error
}

// Actor identifies the admin performing a mutation
type Actor struct {
	ID    string
	Email string
}

// ActivityService records admin mutations. Recording never fails the caller.
type ActivityService struct {
	repo      repository.ActivityLogRepositoryInterface
	publisher ActivityPublisher
	logger    *logrus.Entry
}

// NewActivityService creates an activity service; publisher may be nil
func NewActivityService(repo repository.ActivityLogRepositoryInterface, publisher ActivityPublisher, logger *logrus.Logger) *ActivityService {
	if logger == nil {
		logger = logrus.New()
	}
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
		logger:    logger.WithField("component", "activity"),
	}
}

// Log stores the entry and publishes it when a publisher is configured
func (s *ActivityService) Log(ctx context.Context, actor Actor, action string, entityType models.EntityType, entityID, details string) {
	entry := &models.ActivityLog{
		ID:         uuid.New(),
		AdminID:    actor.ID,
		AdminEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  time.Now(),
	}

	fields := logrus.Fields{
		"action":     action,
		"entityType": entityType,
		"entityID":   entityID,
	}
	if err := s.repo.Record(ctx, entry); err != nil {
		s.logger.WithFields(fields).WithError(err).Error("Failed to record activity")
	}
	if s.publisher != nil {
		if err := s.publisher.PublishActivity(ctx, entry); err != nil {
			s.logger.WithFields(fields).WithError(err).Warn("Failed to publish activity")
		}
	}
}

// List returns the newest entries first
func (s *ActivityService) List(ctx context.Context, entityType models.EntityType, limit int) ([]models.ActivityLog, error) {
	return s.repo.List(ctx, entityType, limit)
}
