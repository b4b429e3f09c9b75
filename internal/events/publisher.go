package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sirupsen/logrus"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

const (
	// StreamActivity holds every admin activity event
	StreamActivity = "ACTIVITY_EVENTS"
	subjectPrefix  = "activity"
)

// ActivityEvent is the JSON body published for an admin mutation
type ActivityEvent struct {
	EventType  string    `json:"eventType"`
	ID         string    `json:"id"`
	AdminID    string    `json:"adminId,omitempty"`
	AdminEmail string    `json:"adminEmail,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Subject returns the NATS subject of an activity entry: activity.{entityType}.{action}
func Subject(entry *models.ActivityLog) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, entry.EntityType, entry.Action)
}

// NewActivityEvent converts a stored activity entry to its event form
func NewActivityEvent(entry *models.ActivityLog) *ActivityEvent {
	return &ActivityEvent{
		EventType:  Subject(entry),
		ID:         entry.ID.String(),
		AdminID:    entry.AdminID,
		AdminEmail: entry.AdminEmail,
		Action:     entry.Action,
		EntityType: string(entry.EntityType),
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		Timestamp:  entry.Timestamp.UTC(),
	}
}

// Publisher publishes activity events to JetStream
type Publisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *logrus.Entry
}

// NewPublisher connects to NATS and makes sure the activity stream exists
func NewPublisher(natsURL, name string, logger *logrus.Logger) (*Publisher, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.InfoLevel)
	}
	log := logger.WithField("component", "activity-events")

	nc, err := nats.Connect(natsURL,
		nats.Name(name),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.ReconnectBufSize(8*1024*1024),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.WithError(err).Warn("NATS disconnected")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.WithError(err).Error("NATS error")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamActivity,
		Subjects:  []string{subjectPrefix + ".>"},
		Retention: jetstream.LimitsPolicy,
		MaxAge:    30 * 24 * time.Hour,
		Storage:   jetstream.FileStorage,
		Replicas:  1,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to ensure ACTIVITY_EVENTS stream (may already exist)")
	}

	return &Publisher{nc: nc, js: js, logger: log}, nil
}

// Close drains the NATS connection
func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}

// PublishActivity publishes the entry asynchronously. Failures are logged only.
func (p *Publisher) PublishActivity(ctx context.Context, entry *models.ActivityLog) error {
	event := NewActivityEvent(entry)
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		fields := logrus.Fields{
			"subject":    event.EventType,
			"entityType": event.EntityType,
			"entityID":   event.EntityID,
		}
		if _, err := p.js.Publish(pubCtx, event.EventType, data); err != nil {
			p.logger.WithFields(fields).WithError(err).Error("Failed to publish activity event")
			return
		}
		p.logger.WithFields(fields).Debug("Activity event published")
	}()

	return nil
}
