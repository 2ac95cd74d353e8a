// Package log holds the process-wide loggers. Everything is written to a file in the temp
// directory because stdout belongs to the terminal UI.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// LevelEnv overrides the log level, e.g. ACTIONMENU_LOG=debug.
const LevelEnv = "ACTIONMENU_LOG"

var (
	// Logger is the structured logger the level-specific loggers below write through.
	Logger *charmlog.Logger

	InfoLog    *stdlog.Logger
	WarningLog *stdlog.Logger
	ErrorLog   *stdlog.Logger
)

var logFileName = filepath.Join(os.TempDir(), "actionmenu.log")

var globalLogFile *os.File

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}

// NewLogger returns a logger writing to w at the given level.
func NewLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "actionmenu",
	})
}

// Initialize opens the log file and sets up the loggers. Call Close before exiting.
func Initialize(verbose bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// The UI owns the terminal, so there is nowhere better to report this.
		InitializeWriter(io.Discard, levelFor(verbose))
		return
	}
	globalLogFile = f
	InitializeWriter(f, levelFor(verbose))
}

// InitializeWriter points every logger at w.
func InitializeWriter(w io.Writer, level charmlog.Level) {
	Logger = NewLogger(w, level)
	InfoLog = Logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.InfoLevel})
	WarningLog = Logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.WarnLevel})
	ErrorLog = Logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.ErrorLevel})
}

// levelFor picks the level from LevelEnv, falling back to debug when verbose and info otherwise.
func levelFor(verbose bool) charmlog.Level {
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		if level, err := charmlog.ParseLevel(env); err == nil {
			return level
		}
	}
	if verbose {
		return charmlog.DebugLevel
	}
	return charmlog.InfoLevel
}

// Close closes the log file and tells the user where the logs went.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote logs to "+logFileName)
}

func init() {
	// Usable before Initialize, e.g. from tests.
	InitializeWriter(io.Discard, charmlog.InfoLevel)
}

// Verbose reports whether debug-level messages are written.
func Verbose() bool {
	return Logger.GetLevel() <= charmlog.DebugLevel
}
