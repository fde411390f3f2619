// Package logger writes the game's debug log. The terminal belongs to the UI,
// so records only ever go to a file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

const (
	appDirName  = ".pontoon"
	logFileName = "debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	mu       sync.RWMutex
	debugLog *os.File
	logPath  string
	current  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// lockedWriter serialises writes from concurrent tea commands.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Init opens ~/.pontoon/debug.log.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitAt(filepath.Join(homeDir, appDirName))
}

// InitAt opens (or creates) debug.log inside logDir, rotating it first when it
// has grown past 10 MB.
func InitAt(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		backupPath := filepath.Join(logDir, fmt.Sprintf("%s.%d", logFileName, time.Now().Unix()))
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	pl := pterm.DefaultLogger.
		WithWriter(&lockedWriter{w: f}).
		WithFormatter(pterm.LogFormatterJSON).
		WithLevel(pterm.LogLevelInfo).
		WithTime(true)

	mu.Lock()
	if debugLog != nil {
		_ = debugLog.Close()
	}
	debugLog = f
	logPath = path
	current = slog.New(pterm.NewSlogHandler(pl))
	mu.Unlock()

	L().Info("logger initialized", "path", path)
	return nil
}

// L returns the structured logger. Before Init it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Close 关闭日志文件
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
	current = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogInfo logs a formatted info message.
func LogInfo(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// LogError logs a formatted error message.
func LogError(format string, args ...any) {
	L().Error(fmt.Sprintf(format, args...))
}

// LogPanic logs a recovered panic with its stack trace.
func LogPanic(r any) {
	L().Error("panic", "value", fmt.Sprint(r), "stack", string(debug.Stack()))
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}
