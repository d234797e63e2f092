package repo

import (
	"StationAdmin/internal/model"
	"context"

	"gorm.io/gorm"
)

// StationRepository: доступ к таблице Stations.
type StationRepository interface {
	// ProbeOne выполняет фиксированный запрос SELECT * FROM "Stations" LIMIT 1
	// и возвращает строки без приведения к модели.
	ProbeOne(ctx context.Context) ([]map[string]any, error)

	// List возвращает станции, отсортированные по id, не больше limit.
	List(ctx context.Context, limit int) ([]model.Station, error)
}

type stationRepo struct {
	db *gorm.DB
}

// NewStationRepository создаёт репозиторий станций. db может быть nil.
func NewStationRepository(db *gorm.DB) StationRepository {
	return &stationRepo{db: db}
}

func (r *stationRepo) ProbeOne(ctx context.Context) ([]map[string]any, error) {
	if r.db == nil {
		return nil, wrapQueryError(ErrNoDataSource)
	}
	rows := []map[string]any{}
	if err := r.db.WithContext(ctx).Table(model.StationsTable).Limit(1).Find(&rows).Error; err != nil {
		return nil, wrapQueryError(err)
	}
	return rows, nil
}

func (r *stationRepo) List(ctx context.Context, limit int) ([]model.Station, error) {
	if r.db == nil {
		return nil, wrapQueryError(ErrNoDataSource)
	}
	var stations []model.Station
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&stations).Error; err != nil {
		return nil, wrapQueryError(err)
	}
	return stations, nil
}
