package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/GarnetAerisMarquez/retail-inventory/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the diagnostic logger described by cfg. Entries go to cfg.File
// when set, stderr otherwise; stdout belongs to the menu. Every entry carries
// the session ID of this run. The returned Closer releases the log file.
func New(cfg config.LogConfig) (*logrus.Entry, io.Closer, error) {
	if cfg.File == "" {
		entry, err := build(cfg, os.Stderr)
		return entry, nopCloser{}, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	entry, err := build(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return entry, f, nil
}

func build(cfg config.LogConfig, out io.Writer) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return l.WithField("session", uuid.NewString()), nil
}
