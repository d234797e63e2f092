package handlers

import (
	"StationAdmin/internal/config"
	"StationAdmin/internal/middleware"
	"StationAdmin/internal/routepath"
	"StationAdmin/internal/service"
	"StationAdmin/internal/templates"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// hxRedirectHeader заставляет htmx перейти на указанный адрес после ответа.
const hxRedirectHeader = "HX-Redirect"

// hxReswapHeader задаёт способ подмены ответа в цели запроса.
const hxReswapHeader = "HX-Reswap"

// UserHandler регистрация, вход, статус и выход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// Credentials тело запросов register/login. Принимается JSON или форма.
type Credentials struct {
	Login    string `json:"login" form:"login"`
	Password string `json:"password" form:"password"`
}

type resultResponse struct {
	Result string `json:"result"`
}

// Register регистрация пользователя и выдача cookie
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req Credentials
	if err := render.Decode(r, &req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, service.ErrEmptyCredentials):
		http.Error(w, "login and password are required", http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrLoginTaken):
		http.Error(w, "login already taken", http.StatusConflict)
		return
	case err != nil:
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.signIn(w, r, user.ID)
}

// Login вход пользователя и выдача cookie
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req Credentials
	if err := render.Decode(r, &req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		h.loginFailed(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, service.ErrEmptyCredentials):
		h.loginFailed(w, r, http.StatusBadRequest, "login and password are required")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		h.loginFailed(w, r, http.StatusUnauthorized, "invalid login or password")
		return
	case err != nil:
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		h.loginFailed(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	h.signIn(w, r, user.ID)
}

// loginFailed отвечает ошибкой входа. htmx не подменяет разметку на 4xx/5xx,
// поэтому форме отдаём 200 с фрагментом ошибки, остальным клиентам код ошибки.
func (h *UserHandler) loginFailed(w http.ResponseWriter, r *http.Request, status int, message string) {
	if !isHTMXRequest(r) {
		http.Error(w, message, status)
		return
	}
	w.Header().Set(hxReswapHeader, "innerHTML")
	templ.Handler(templates.LoginError(message)).ServeHTTP(w, r)
}

func (h *UserHandler) signIn(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("signIn: failed to issue token", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if isHTMXRequest(r) {
		w.Header().Set(hxRedirectHeader, routepath.AdminDashboard)
	}
	render.JSON(w, r, resultResponse{Result: "ok"})
}

// Status возвращает текущего пользователя или anonymous
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := "anonymous"
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		result = fmt.Sprintf("User ID = %d", uid)
	}
	render.JSON(w, r, resultResponse{Result: result})
}

// Logout сбрасывает cookie. Всегда успешен, клиент после ответа уходит на страницу входа.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.Header().Set(hxRedirectHeader, routepath.Login)
	w.WriteHeader(http.StatusNoContent)
}

// LoginPage форма входа
func (h *UserHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Sign in", templates.LoginPage(""))
}

// isHTMXRequest запрос пришёл от htmx
func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
