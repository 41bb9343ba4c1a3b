package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		component:       "test",
		consoleLogger:   log.New(&buf, "", 0),
		minConsoleLevel: WARN,
	}

	l.Debug("ниже порога")
	l.Info("тоже ниже")
	l.Warn("на пороге")
	l.Error("выше порога")

	out := buf.String()
	assert.NotContains(t, out, "ниже порога")
	assert.NotContains(t, out, "тоже ниже")
	assert.Contains(t, out, "[WARN] [test] на пороге")
	assert.Contains(t, out, "[ERROR] [test] выше порога")
}

func TestLoggerSeparateFileThreshold(t *testing.T) {
	var console, file bytes.Buffer
	l := &Logger{
		component:       "test",
		consoleLogger:   log.New(&console, "", 0),
		fileLogger:      log.New(&file, "", 0),
		minConsoleLevel: WARN,
		minFileLevel:    TRACE,
	}

	l.Trace("только в файл")

	assert.Empty(t, console.String())
	assert.Contains(t, file.String(), "[TRACE] [test] только в файл")
}

func TestLogLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		TRACE: "TRACE",
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
	}
	for level, want := range cases {
		assert.Equal(t, want, level.String())
	}
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}
