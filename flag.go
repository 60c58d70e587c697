package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/posterforge/nvisposter/internal/poster"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}

type formatFlag struct {
	value string
}

func (f *formatFlag) String() string {
	return f.value
}

func (f *formatFlag) Set(value string) error {
	v, err := poster.ParseFormat(value)
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(poster.Formats(), ", "))
	}
	f.value = v
	return nil
}
