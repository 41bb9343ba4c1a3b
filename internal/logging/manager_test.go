package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Логгеры создают файлы в ./logs — на время теста уходим во
// временную директорию
func chtmp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestManagerReusesLogger(t *testing.T) {
	chtmp(t)
	lm := GetLoggerManager()
	t.Cleanup(func() { lm.CloseAll() })

	first, err := lm.GetLogger("world")
	require.NoError(t, err)
	second, err := lm.GetLogger("world")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Contains(t, lm.ListComponents(), "world")
}

func TestManagerSetLogLevel(t *testing.T) {
	chtmp(t)
	lm := GetLoggerManager()
	t.Cleanup(func() { lm.CloseAll() })

	logger := lm.MustGetLogger("config")
	require.NoError(t, lm.SetLogLevel("config", DEBUG, TRACE))
	assert.Equal(t, DEBUG, logger.minConsoleLevel)
	assert.Equal(t, TRACE, logger.minFileLevel)

	// Неизвестный компонент — ошибка, а не создание логгера
	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))
}

func TestManagerCloseAll(t *testing.T) {
	chtmp(t)
	lm := GetLoggerManager()
	lm.MustGetLogger("world")
	lm.MustGetLogger("config")

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestComponentLoggerShortcuts(t *testing.T) {
	chtmp(t)
	lm := GetLoggerManager()
	t.Cleanup(func() { lm.CloseAll() })

	world := GetWorldLogger()
	config := GetConfigLogger()

	assert.Equal(t, "world", world.component)
	assert.Equal(t, "config", config.component)
	assert.Same(t, world, GetWorldLogger())
}
