package utils

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

// InitLogger configures the global zerolog logger. Development gets a
// human console writer, everything else stays JSON.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func ColorText(text, color string) string {
	return color + text + Reset
}

func ColorStatus(statusCode int) string {
	code := strconv.Itoa(statusCode)
	switch {
	case statusCode >= 500:
		return ColorText(code, Red)
	case statusCode >= 400:
		return ColorText(code, Yellow)
	default:
		return ColorText(code, Green)
	}
}

// PrintLogInfo writes the one-line handler summary used across delivery.
func PrintLogInfo(statusCode int, handlerName string, err error) {
	event := log.Info()
	if statusCode >= http.StatusInternalServerError {
		event = log.Error()
	} else if statusCode >= http.StatusBadRequest {
		event = log.Warn()
	}
	if err != nil {
		event = event.Err(err)
	}
	event.Int("status", statusCode).Str("handler", handlerName).
		Msg(fmt.Sprintf("Status: %s | Handler: %s", ColorStatus(statusCode), handlerName))
}
