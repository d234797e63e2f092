package handlers

import (
	"StationAdmin/internal/middleware"
	"StationAdmin/internal/routepath"
	"StationAdmin/internal/service"
	"StationAdmin/internal/templates"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// AdminHandler отдаёт HTML-страницы админки.
type AdminHandler struct {
	StationService *service.StationService
	Logger         *zap.SugaredLogger
}

// NewAdminHandler создаёт хендлер страниц админки
func NewAdminHandler(stationService *service.StationService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{StationService: stationService, Logger: logger}
}

// stationList: список станций рендерится только на клиенте, сервер отдаёт заглушку.
var stationList = templates.Deferred{
	Path:             routepath.AdminStationsList,
	LoadingMessage:   "Loading stations...",
	ServerRenderable: false,
}

// Dashboard страница, на которую ведёт редирект с корня
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Dashboard", templates.Dashboard())
}

// Stations оболочка страницы списка: заголовок и отложенный список
func (h *AdminHandler) Stations(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Stations", templates.StationsPage(stationList))
}

// StationList фрагмент со списком, его запрашивает клиент после загрузки страницы
func (h *AdminHandler) StationList(w http.ResponseWriter, r *http.Request) {
	stations, err := h.StationService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("StationList: service error", "error", err)
		templ.Handler(templates.StationListError("Stations are unavailable"),
			templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
		return
	}
	templ.Handler(templates.StationTable(stations)).ServeHTTP(w, r)
}

// renderPage оборачивает тело страницы в общий layout с шапкой авторизации
func renderPage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	token := middleware.GetTokenFromContext(r.Context())
	templ.Handler(templates.Layout(title, token, body)).ServeHTTP(w, r)
}
