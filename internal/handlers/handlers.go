package handlers

import (
	"StationAdmin/internal/config"
	"StationAdmin/internal/middleware"
	"StationAdmin/internal/routepath"
	"StationAdmin/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	stationService *service.StationService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))
	// без явного списка origin-ов rs/cors разрешает всех, поэтому включаем только по конфигу
	if len(config.CORSOrigins) > 0 {
		r.Use(newCORS(config.CORSOrigins).Handler)
	}

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	adminHandler := NewAdminHandler(stationService, logger)
	probeHandler := NewProbeHandler(stationService, logger)

	// Корень всегда уводит в админку
	r.HandleFunc(routepath.Root, RedirectRoot)

	// Admin pages
	r.Get(routepath.AdminDashboard, adminHandler.Dashboard)
	r.Get(routepath.AdminStations, adminHandler.Stations)
	r.Get(routepath.AdminStationsList, adminHandler.StationList)
	r.Get(routepath.Login, userHandler.LoginPage)

	// API
	r.Get(routepath.APITestDB, probeHandler.TestDB)

	r.Post(routepath.APIUserRegister, userHandler.Register)
	r.Post(routepath.APIUserLogin, userHandler.Login)
	r.Post(routepath.APIUserStatus, userHandler.Status)
	r.Post(routepath.APILogout, userHandler.Logout)

	return &Handler{Router: r}
}

// newCORS разрешает кросс-доменные запросы к API только для указанных origin-ов.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"},
		ExposedHeaders:   []string{"HX-Redirect"},
		AllowCredentials: true,
	})
}

// RedirectRoot постоянный редирект с корня сайта на дашборд админки.
func RedirectRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AdminDashboard, http.StatusPermanentRedirect)
}
