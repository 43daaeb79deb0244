package logging

import (
	"io"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger from config.
// Calling it again replaces the previous instance after closing it.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// SetLogger installs an already constructed logger
func SetLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = logger
}

// GetLogger returns the singleton logger instance.
// Before InitLogger is called it returns a logger that discards output.
func GetLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = NewWriterLogger(io.Discard, LevelInfo)
	}
	return instance
}
