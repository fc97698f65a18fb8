package middleware

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// LogFilter decides which request log lines are written. Suppression is an
// explicit startup-configured list of substrings, never a patched global
// logger, so the filtering behavior stays visible and testable.
type LogFilter struct {
	suppress []string
	printf   func(format string, args ...any)
}

// NewLogFilter builds a filter that drops lines containing any of the given
// substrings. A nil printf falls back to the standard logger.
func NewLogFilter(suppress []string, printf func(format string, args ...any)) *LogFilter {
	if printf == nil {
		printf = log.Printf
	}
	return &LogFilter{suppress: suppress, printf: printf}
}

// Printf writes the line unless a suppression substring matches it.
func (f *LogFilter) Printf(format string, args ...any) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	for _, needle := range f.suppress {
		if strings.Contains(line, needle) {
			return
		}
	}
	f.printf(format, args...)
}

// Logging writes a concise structured line for each HTTP request through the
// injected filter.
func Logging(filter *LogFilter) echo.MiddlewareFunc {
	if filter == nil {
		filter = NewLogFilter(nil, nil)
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			rid, _ := c.Get(ContextKeyRequestID).(string)
			filter.Printf("request_id=%s method=%s path=%s status=%d latency=%s",
				rid, c.Request().Method, c.Request().URL.Path, c.Response().Status, latency)

			return err
		}
	}
}
