package slogx

import (
	"fmt"
	"log/slog"
)

// Error renders err with its stack trace when it carries one.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.String("error", fmt.Sprintf("%+v", err))
}
