package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"StationAdmin/internal/config"

	"github.com/stretchr/testify/require"
)

// withTempConfig возвращает конфиг, у которого файл токена лежит во временном каталоге.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "auth_token"),
	}
}

// перехват вывода CLI на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

func readToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	b, err := os.ReadFile(cfg.TokenFile)
	require.NoError(t, err)
	return string(bytes.TrimSpace(b))
}
