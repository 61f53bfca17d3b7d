package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"today-knowledge/db"
	"today-knowledge/models"
)

type GenerationLogRepository struct {
	col *mongo.Collection
}

func NewGenerationLogRepository(d *mongo.Database) *GenerationLogRepository {
	return &GenerationLogRepository{col: d.Collection(db.GenerationLogsCollection)}
}

func (r *GenerationLogRepository) Insert(ctx context.Context, log models.GenerationLog) error {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, log)
	return err
}
