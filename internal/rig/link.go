// Package rig talks to the Arduino that turns the cube over a USB serial
// link. Payloads are plain ASCII move strings; the rig answers with free-form
// text once it has finished.
package rig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/SeamusWaldron/cuberobot"
)

const (
	// StopCommand halts the rig immediately.
	StopCommand = "STOP"

	// readPoll bounds a single Read so context cancellation is noticed.
	readPoll = 100 * time.Millisecond

	// maxResponse caps how much of a chatty reply is kept.
	maxResponse = 4096
)

// Port is the subset of serial.Port the link uses.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	ResetInputBuffer() error
	Drain() error
}

// Opener opens a serial port at the given baud rate.
type Opener func(name string, baudRate int) (Port, error)

// SerialOpener opens a real serial port.
func SerialOpener(name string, baudRate int) (Port, error) {
	p, err := serial.Open(name, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Config holds link settings.
type Config struct {
	Port     string
	BaudRate int

	// SettleDelay is how long to wait after opening; the Arduino resets
	// when the port opens.
	SettleDelay time.Duration
	// ResponseTimeout bounds the wait for the first byte of a reply.
	ResponseTimeout time.Duration
	// QuietPeriod ends a reply once no byte has arrived for this long.
	QuietPeriod time.Duration

	Opener Opener
	Logger *slog.Logger
}

// DefaultConfig returns the settings of the stock rig firmware.
func DefaultConfig() Config {
	return Config{
		Port:            DefaultPort(),
		BaudRate:        9600,
		SettleDelay:     3 * time.Second,
		ResponseTimeout: 60 * time.Second,
		QuietPeriod:     time.Second,
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Port == "" {
		c.Port = def.Port
	}
	if c.BaudRate <= 0 {
		c.BaudRate = def.BaudRate
	}
	if c.SettleDelay < 0 {
		c.SettleDelay = 0
	}
	if c.ResponseTimeout <= 0 {
		c.ResponseTimeout = def.ResponseTimeout
	}
	if c.QuietPeriod <= 0 {
		c.QuietPeriod = def.QuietPeriod
	}
	if c.Opener == nil {
		c.Opener = SerialOpener
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}

// Link is an open connection to the rig. It is not safe for concurrent use.
type Link struct {
	cfg    Config
	port   Port
	logger *slog.Logger
}

// Open opens the serial port and waits for the rig to settle.
func Open(ctx context.Context, cfg Config) (*Link, error) {
	cfg.applyDefaults()
	logger := cfg.Logger.With("port", cfg.Port)

	p, err := cfg.Opener(cfg.Port, cfg.BaudRate)
	if err != nil {
		logger.Error("serial open failed", "error", err)
		return nil, fmt.Errorf("%w: open %s: %v", cuberobot.ErrConnectionFailure, cfg.Port, err)
	}
	logger.Info("connected to rig", "baud", cfg.BaudRate)

	if cfg.SettleDelay > 0 {
		t := time.NewTimer(cfg.SettleDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	return &Link{cfg: cfg, port: p, logger: logger}, nil
}

// WithLink opens a link, runs fn and always closes the port.
func WithLink(ctx context.Context, cfg Config, fn func(*Link) error) error {
	l, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer l.Close()
	return fn(l)
}

// Close closes the serial port.
func (l *Link) Close() error {
	l.logger.Debug("closing serial port")
	return l.port.Close()
}

// PortName returns the name of the open port.
func (l *Link) PortName() string {
	return l.cfg.Port
}

// Send writes payload and returns the rig's trimmed reply. It fails with
// ErrTimeout when nothing arrives within the response timeout; once data
// arrives it reads until the line has been quiet for the quiet period.
func (l *Link) Send(ctx context.Context, payload string) (string, error) {
	if err := l.port.ResetInputBuffer(); err != nil {
		l.logger.Debug("reset input buffer failed", "error", err)
	}

	if _, err := l.port.Write([]byte(payload)); err != nil {
		l.logger.Error("serial write failed", "payload", payload, "error", err)
		return "", fmt.Errorf("%w: write to %s: %v", cuberobot.ErrConnectionFailure, l.cfg.Port, err)
	}
	l.logger.Info("sent to rig", "payload", payload)

	resp, err := l.readResponse(ctx)
	if err != nil {
		l.logger.Warn("no usable reply from rig", "payload", payload, "error", err)
		return "", err
	}
	l.logger.Info("rig replied", "response", resp)
	return resp, nil
}

func (l *Link) readResponse(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 256)

	deadline := time.Now().Add(l.cfg.ResponseTimeout)
	var lastByte time.Time

	for buf.Len() < maxResponse {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		now := time.Now()
		var wait time.Duration
		if buf.Len() == 0 {
			if !now.Before(deadline) {
				return "", fmt.Errorf("%w: no reply on %s within %s",
					cuberobot.ErrTimeout, l.cfg.Port, l.cfg.ResponseTimeout)
			}
			wait = deadline.Sub(now)
		} else {
			gap := now.Sub(lastByte)
			if gap >= l.cfg.QuietPeriod {
				break
			}
			wait = l.cfg.QuietPeriod - gap
		}
		wait = min(wait, readPoll)

		if err := l.port.SetReadTimeout(wait); err != nil {
			return "", fmt.Errorf("%w: set read timeout: %v", cuberobot.ErrConnectionFailure, err)
		}

		// A timed-out Read returns 0, nil.
		n, err := l.port.Read(chunk)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: read from %s: %v", cuberobot.ErrConnectionFailure, l.cfg.Port, err)
		}
		if n > 0 {
			buf.Write(chunk[:n])
			lastByte = time.Now()
		}
	}

	return strings.TrimSpace(strings.ToValidUTF8(buf.String(), "")), nil
}

// SendMoves validates moves and sends them in compact form. An empty
// sequence is not sent.
func (l *Link) SendMoves(ctx context.Context, moves string) (string, error) {
	parsed, err := cuberobot.ParseMoves(moves)
	if err != nil {
		return "", err
	}
	if len(parsed) == 0 {
		l.logger.Info("no moves to send")
		return "", nil
	}
	return l.Send(ctx, cuberobot.CompactMoves(parsed))
}

// Test sends a single U turn to check the rig responds.
func (l *Link) Test(ctx context.Context) (string, error) {
	return l.Send(ctx, cuberobot.TestMove.Notation())
}

// EmergencyStop writes the stop command without waiting for a reply.
func (l *Link) EmergencyStop() error {
	if _, err := l.port.Write([]byte(StopCommand)); err != nil {
		return fmt.Errorf("%w: write stop to %s: %v", cuberobot.ErrConnectionFailure, l.cfg.Port, err)
	}
	if err := l.port.Drain(); err != nil {
		l.logger.Debug("drain after stop failed", "error", err)
	}
	l.logger.Warn("emergency stop sent")
	return nil
}
