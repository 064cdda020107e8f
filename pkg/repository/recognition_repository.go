package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

type recognitionRepository struct {
	db *bun.DB
}

func NewRecognitionRepository(db *bun.DB) *recognitionRepository {
	return &recognitionRepository{db: db}
}

func (r *recognitionRepository) Save(ctx context.Context, rec *domain.Recognition) error {
	rec.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(rec).
		Exec(ctx)
	return err
}

func (r *recognitionRepository) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Recognition, error) {
	var recs []domain.Recognition

	err := r.db.NewSelect().
		Model(&recs).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching recognitions: %w", err)
	}

	return recs, nil
}
