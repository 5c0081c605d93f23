package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const fileName = "jortask.log"

// Setup points the global zerolog logger at stderr (console format) and,
// when dir is writable, at dir/jortask.log (JSON). The returned closer
// releases the log file.
func Setup(level, dir string) io.Closer {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	writers := []io.Writer{console}

	var f *os.File
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err == nil {
			f, _ = os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		}
	}
	if f != nil {
		writers = append(writers, f)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if f == nil {
		return io.NopCloser(nil)
	}
	return f
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
