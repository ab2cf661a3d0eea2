// Package logging builds the prefixed gommon loggers shared by the host, the background
// app and the HTTP shell.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/labstack/gommon/log"
)

const header = `${time_rfc3339} ${level} ${prefix} ${short_file}:${line}`

var (
	mu     sync.Mutex
	level  = log.INFO
	output io.Writer = os.Stdout
)

// New returns a logger tagged with prefix at the current default level.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := log.New(prefix)
	l.SetHeader(header)
	l.SetLevel(level)
	l.SetOutput(output)
	return l
}

// Configure sets the level and output used by loggers created afterwards.
func Configure(lvl log.Lvl, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	if w != nil {
		output = w
	}
}

// ParseLevel maps "debug", "info", "warn", "error" and "off" to a gommon level.
func ParseLevel(s string) (log.Lvl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, true
	case "info", "":
		return log.INFO, true
	case "warn", "warning":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	}
	return log.INFO, false
}
