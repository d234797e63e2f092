package commands

import (
	"StationAdmin/internal/cli/api"
	"StationAdmin/internal/cli/logout"
	"StationAdmin/internal/config"
	"context"
	"fmt"
	"io"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Sign out on the server and forget the local token" }
func (logoutCmd) Usage() string       { return "logout" }

// Run вызывает хук выхода; ошибки сервера и сети не влияют на результат.
// После перехода на страницу входа локальный токен удаляется.
func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store := tokenStore(cfg)
	token, _ := store.Load()

	hook := logout.New(cfg.ServerURL, api.Client, loginPrompt{out: Out, serverURL: cfg.ServerURL}, logout.WithToken(token))
	hook.Logout(ctx)

	if err := store.Delete(); err != nil {
		return fmt.Errorf("remove local token: %w", err)
	}
	return nil
}

// loginPrompt: навигация в терминале: показать, куда идти для повторного входа.
type loginPrompt struct {
	out       io.Writer
	serverURL string
}

func (p loginPrompt) Navigate(path string) {
	fmt.Fprintf(p.out, "Logged out. Sign in again at %s%s\n", p.serverURL, path)
}

func init() { RegisterCmd(logoutCmd{}) }
