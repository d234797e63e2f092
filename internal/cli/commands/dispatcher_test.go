package commands

import (
	"context"
	"fmt"
	"testing"

	"StationAdmin/internal/config"

	"github.com/stretchr/testify/assert"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{}) })
	assert.Contains(t, out, "StationAdmin CLI")
	assert.Equal(t, 2, code)

	out = withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"help"}) })
	assert.Contains(t, out, "Usage:")
	for _, name := range []string{"login", "register", "status", "probe", "logout"} {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, 0, code)

	out = withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"help", "login"}) })
	assert.Equal(t, "Usage: login <login> <password>\n", out)
	assert.Equal(t, 0, code)

	out = withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"help", "nope"}) })
	assert.Contains(t, out, "Unknown command: nope")
	assert.Equal(t, 2, code)

	out = withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"no-such"}) })
	assert.Contains(t, out, "Unknown command: no-such")
	assert.Equal(t, 2, code)
}

func TestDispatcher_RunPaths(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	RegisterCmd(fakeCmd{name: "x", usage: "x", run: func(context.Context, *config.Config, []string) error { return nil }})
	RegisterCmd(fakeCmd{name: "u", usage: "u <arg>", run: func(context.Context, *config.Config, []string) error { return ErrUsage }})
	RegisterCmd(fakeCmd{name: "e", usage: "e", run: func(context.Context, *config.Config, []string) error { return fmt.Errorf("boom") }})
	t.Cleanup(func() {
		delete(registry, "x")
		delete(registry, "u")
		delete(registry, "e")
	})

	var code int
	withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"X"}) })
	assert.Equal(t, 0, code, "command names are case-insensitive")

	out := withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"u"}) })
	assert.Contains(t, out, "Usage: u <arg>")
	assert.Equal(t, 2, code)

	out = withStdoutCapture(t, func() { code = Dispatch(ctx, cfg, []string{"e"}) })
	assert.Contains(t, out, "e error: boom")
	assert.Equal(t, 1, code)
}

func TestWantsHelp(t *testing.T) {
	assert.True(t, wantsHelp([]string{"status", "--help"}))
	assert.True(t, wantsHelp([]string{"-h"}))
	assert.False(t, wantsHelp([]string{"status", "help"}))
	assert.False(t, wantsHelp(nil))
}
