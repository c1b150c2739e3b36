// Package logging builds the application logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "cuberobot.log"

var level = new(slog.LevelVar)

// SetLevel changes the level of every logger built by New.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Options configures New.
type Options struct {
	// Dir receives LogFile. Empty disables file logging.
	Dir string
	// Terminal receives human-readable records. Nil means os.Stderr.
	Terminal io.Writer
	Verbose  bool
}

// New returns a logger writing text records to the terminal and JSON
// records to the log file. Under a systemd service the terminal handler is
// replaced by the journal. The returned closer closes the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	if opts.Terminal == nil {
		opts.Terminal = os.Stderr
	}

	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	// local
	var terminalHandler slog.Handler
	if !isSystemdService() {
		terminalHandler = slog.NewTextHandler(opts.Terminal, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, terminalHandler)
	} else {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			terminalHandler = slog.NewTextHandler(opts.Terminal, &slog.HandlerOptions{Level: level})
			handlers = append(handlers, terminalHandler)
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	// file
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(opts.Dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
