package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

const defaultActivityLimit = 100

// ActivityLogRepositoryInterface stores the append-only admin activity log
type ActivityLogRepositoryInterface interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
	// List returns the newest entries first; an empty entityType matches all
	List(ctx context.Context, entityType models.EntityType, limit int) ([]models.ActivityLog, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return defaultActivityLimit
	}
	return limit
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository stores activity in Postgres
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepositoryInterface {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Record(ctx context.Context, entry *models.ActivityLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *activityLogRepository) List(ctx context.Context, entityType models.EntityType, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(normalizeLimit(limit))
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

// activityDocument is the MongoDB shape of an ActivityLog
type activityDocument struct {
	ID         string    `bson:"_id"`
	AdminID    string    `bson:"adminId"`
	AdminEmail string    `bson:"adminEmail"`
	Action     string    `bson:"action"`
	EntityType string    `bson:"entityType"`
	EntityID   string    `bson:"entityId"`
	Details    string    `bson:"details"`
	Timestamp  time.Time `bson:"timestamp"`
}

type mongoActivityLogRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityLogRepository stores activity in the activity_logs collection
func NewMongoActivityLogRepository(collection *mongo.Collection) ActivityLogRepositoryInterface {
	return &mongoActivityLogRepository{collection: collection}
}

func (r *mongoActivityLogRepository) Record(ctx context.Context, entry *models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	doc := activityDocument{
		ID:         entry.ID.String(),
		AdminID:    entry.AdminID,
		AdminEmail: entry.AdminEmail,
		Action:     entry.Action,
		EntityType: string(entry.EntityType),
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		Timestamp:  entry.Timestamp,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *mongoActivityLogRepository) List(ctx context.Context, entityType models.EntityType, limit int) ([]models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if entityType != "" {
		filter["entityType"] = string(entityType)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(normalizeLimit(limit)))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode activity: %w", err)
	}

	entries := make([]models.ActivityLog, 0, len(docs))
	for _, d := range docs {
		id, _ := uuid.Parse(d.ID)
		entries = append(entries, models.ActivityLog{
			ID:         id,
			AdminID:    d.AdminID,
			AdminEmail: d.AdminEmail,
			Action:     d.Action,
			EntityType: models.EntityType(d.EntityType),
			EntityID:   d.EntityID,
			Details:    d.Details,
			Timestamp:  d.Timestamp,
		})
	}
	return entries, nil
}
