package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-invaders.log"
	maxLogSize  = 10 * 1024 * 1024
)

// rotatedLogName returns the archive name for a log rotated at t
func rotatedLogName(t time.Time) string {
	return "vi-invaders-" + t.Format("20060102-150405") + ".log"
}

// setupLogging routes the standard logger to a file when debug is set,
// otherwise discards all output. The returned file is nil when disabled
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND

	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, rotatedLogName(time.Now()))
		if rotateErr = os.Rename(logPath, rotated); rotateErr != nil {
			// Keep the size bound even when the archive cannot be written
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
	}

	file, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if rotateErr != nil {
		log.Printf("log rotation failed, truncated %s: %v", logPath, rotateErr)
	}
	return file
}

// logCloser returns an idempotent flush-and-close for the debug log
func logCloser(file *os.File) func() {
	var once sync.Once
	return func() {
		if file == nil {
			return
		}
		once.Do(func() {
			file.Sync()
			file.Close()
		})
	}
}
