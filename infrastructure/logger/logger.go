package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type LogData struct {
	File      string `json:"file"`
	Function  string `json:"function"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
	Timestamp string `json:"timestamp"`
}

type fileLogger struct {
	mu      sync.Mutex
	logFile *os.File
	encoder *json.Encoder
}

// NewFileLogger creates a JSON log file under logDir, one file per run.
func NewFileLogger(logDir, logPrefix string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFilePath, err)
	}

	return &fileLogger{
		logFile: file,
		encoder: json.NewEncoder(file),
	}, nil
}

func (l *fileLogger) writeLogInternal(level string, msg string, errIn error, skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping entry: %s\n", msg)
		return
	}

	pc, filePath, _, ok := runtime.Caller(skip)

	funcName := "???"
	shortFileName := "???"
	if ok {
		shortFileName = filepath.Base(filePath)
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			funcName = parts[len(parts)-1]
		}
	}

	logEntry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		File:      shortFileName,
		Function:  funcName,
		Level:     level,
		Message:   msg,
	}

	if errIn != nil {
		logEntry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(logEntry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func (l *fileLogger) Info(msg string) {
	l.writeLogInternal("INFO", msg, nil, 2)
}

func (l *fileLogger) Error(msg string, err error) {
	l.writeLogInternal("ERROR", msg, err, 2)
}

func (l *fileLogger) Warning(msg string) {
	l.writeLogInternal("WARNING", msg, nil, 2)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		l.logFile = nil
	}
}
