package ideadensity

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the package logger, a no-op by default. Swap in a real logger to
// see per-token debug output.
var Logger = zerolog.Nop()

// Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

// SpacyLogConsumer forwards compose container logs to zerolog and watches for
// the line signalling that the parser is ready to serve.
type SpacyLogConsumer struct {
	Prefix      string
	ShowService bool
	ShowType    bool
	Level       zerolog.Level
	Quiet       bool
	initChan    chan struct{}
	failedChan  chan error
}

func NewSpacyLogConsumer() *SpacyLogConsumer {
	return &SpacyLogConsumer{
		Prefix:      "compose",
		ShowService: true,
		ShowType:    true,
		Level:       zerolog.DebugLevel,
		initChan:    make(chan struct{}),
		failedChan:  make(chan error),
	}
}

func (l *SpacyLogConsumer) Log(containerName, message string) {
	// gunicorn announces readiness once the model is loaded.
	if strings.Contains(message, "Listening at") || strings.Contains(message, "Booting worker") {
		select {
		case l.initChan <- struct{}{}:
		default: // Channel already closed or message already sent
		}
	}

	if l.Quiet {
		return
	}
	lines := strings.Split(message, "\n")
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			event := log.Debug()
			if l.Level != zerolog.DebugLevel {
				event = log.WithLevel(l.Level)
			}
			if l.ShowService {
				event = event.Str("service", containerName)
			}
			if l.ShowType {
				event = event.Str("type", "stdout")
			}
			if l.Prefix != "" {
				event = event.Str("component", l.Prefix)
			}
			event.Msg(line)
		}
	}
}

func (l *SpacyLogConsumer) Err(containerName, message string) {
	if l.Quiet {
		return
	}
	lines := strings.Split(message, "\n")
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			event := log.Error()
			if l.ShowService {
				event = event.Str("service", containerName)
			}
			if l.ShowType {
				event = event.Str("type", "stderr")
			}
			if l.Prefix != "" {
				event = event.Str("component", l.Prefix)
			}
			event.Msg(line)
		}
	}
}

func (l *SpacyLogConsumer) Status(container, msg string) {
	if l.Quiet {
		return
	}
	event := log.Info()
	if l.ShowService {
		event = event.Str("service", container)
	}
	if l.ShowType {
		event = event.Str("type", "status")
	}
	if l.Prefix != "" {
		event = event.Str("component", l.Prefix)
	}
	event.Msg(msg)
}

func (l *SpacyLogConsumer) Register(container string) {
	if l.Quiet {
		return
	}
	log.Info().
		Str("container", container).
		Str("type", "register").
		Msg("container registered")
}
