package handlers

import (
	"StationAdmin/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// ProbeHandler диагностический запрос к таблице Stations.
type ProbeHandler struct {
	StationService *service.StationService
	Logger         *zap.SugaredLogger
}

// NewProbeHandler создаёт хендлер проверки БД
func NewProbeHandler(stationService *service.StationService, logger *zap.SugaredLogger) *ProbeHandler {
	return &ProbeHandler{StationService: stationService, Logger: logger}
}

// ProbeResponse тело ответа /api/test-db: строки и ошибка как есть.
type ProbeResponse struct {
	Data  []map[string]any `json:"data"`
	Error any              `json:"error"`
}

// TestDB выполняет SELECT * FROM "Stations" LIMIT 1 и отдаёт результат без преобразований.
// Статус всегда 200, ошибки не классифицируются.
func (h *ProbeHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	res := h.StationService.Probe(r.Context())
	if res.Error != nil {
		h.Logger.Warnw("TestDB: query failed", "error", res.Error)
	}
	render.JSON(w, r, ProbeResponse{Data: res.Data, Error: errorValue(res.Error)})
}

// errorValue превращает ошибку в JSON-значение, не разбирая её структуру:
// ошибки, умеющие сериализоваться, отдаются как есть, остальные только текстом.
func errorValue(err error) any {
	if err == nil {
		return nil
	}
	if m, ok := err.(json.Marshaler); ok {
		return m
	}
	return map[string]string{"message": err.Error()}
}
