package service

import (
	"StationAdmin/internal/model"
	"StationAdmin/internal/repo"
	"context"
)

// StationListLimit ограничивает список станций в админке.
const StationListLimit = 100

// ProbeResult: пара (строки, ошибка) диагностического запроса в исходном виде.
type ProbeResult struct {
	Data  []map[string]any
	Error error
}

// StationService чтение таблицы Stations.
type StationService struct {
	repo repo.StationRepository
}

func NewStationService(r repo.StationRepository) *StationService {
	return &StationService{repo: r}
}

// Probe выполняет фиксированный запрос к Stations. Результат не фильтруется и не классифицируется.
func (s *StationService) Probe(ctx context.Context) ProbeResult {
	rows, err := s.repo.ProbeOne(ctx)
	return ProbeResult{Data: rows, Error: err}
}

// List возвращает станции для админского списка.
func (s *StationService) List(ctx context.Context) ([]model.Station, error) {
	return s.repo.List(ctx, StationListLimit)
}
