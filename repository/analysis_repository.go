package repository

import (
	"backend/models"

	"gorm.io/gorm"
)

// AnalysisRepository is the append-only history store. Records are written
// once per completed pipeline run and only ever read back filtered by owner,
// newest first.
type AnalysisRepository interface {
	Create(record *models.AnalysisRecord) error
	FindRecentByUser(user string, limit int) ([]models.AnalysisRecord, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db}
}

func (r *analysisRepository) Create(record *models.AnalysisRecord) error {
	return r.db.Create(record).Error
}

func (r *analysisRepository) FindRecentByUser(user string, limit int) ([]models.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []models.AnalysisRecord
	err := r.db.
		Where("\"user\" = ?", user).
		Order("timestamp DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
