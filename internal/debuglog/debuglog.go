// Package debuglog gates log.Printf output by level.
//
// The global level comes from HOSPITAL_DEBUG and can be replaced at startup
// from the log_level config key (SetGlobalLevel).
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	UseGlobal Level = 255
)

const envKey = "HOSPITAL_DEBUG"

var globalLevel atomic.Uint32

func init() {
	globalLevel.Store(uint32(ParseLevel(os.Getenv(envKey))))
}

// ParseLevel maps a level name to a Level. Unknown names mean info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace
	case "verbose", "debug":
		return LevelVerbose
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelTrace:
		return "trace"
	default:
		return "global"
	}
}

// GlobalLevel returns the current process-wide level.
func GlobalLevel() Level {
	return Level(globalLevel.Load())
}

// SetGlobalLevel replaces the process-wide level. An explicit HOSPITAL_DEBUG wins.
func SetGlobalLevel(level Level) {
	if os.Getenv(envKey) != "" {
		return
	}
	globalLevel.Store(uint32(level))
}

func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel()
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}

func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	if !ShouldLog(level, local) {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

func ErrorLog(format string, args ...interface{}) {
	Log("", LevelError, UseGlobal, "ERROR: "+format, args...)
}

func WarnLog(format string, args ...interface{}) {
	Log("", LevelWarn, UseGlobal, "WARN: "+format, args...)
}

func InfoLog(format string, args ...interface{}) {
	Log("", LevelInfo, UseGlobal, format, args...)
}

// RunAndLog executes fn and logs a label-prefixed error if it fails.
func RunAndLog(label string, fn func() error) {
	if err := fn(); err != nil {
		ErrorLog("%s: %v", label, err)
	}
}

// CloseWithLog closes c and logs a failure. Safe to call with a nil closer.
func CloseWithLog(name string, c io.Closer) {
	if c == nil {
		return
	}
	RunAndLog(name, c.Close)
}
