// Package logger provides a simple logging system for the icon generator.
// It supports different log levels (Debug, Info, Warn, Error) and can
// output to stdout, a file, or both simultaneously. Silent mode can suppress
// non-error messages.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Package-level variables for logger configuration
var (
	logFile     string                                        // Path to log file (if logging to file)
	logDest     = log.New(os.Stdout, "", log.Ldate|log.Ltime) // Default: log to stdout
	logFileDest *log.Logger                                   // Logger for file output (nil if not set)
	silence     bool                                          // If true, suppress non-error messages
)

// SetSilent enables or disables silent mode.
// When silent mode is enabled, only error messages are displayed on stdout.
// File logging, when configured, still receives every message.
func SetSilent(isSilent bool) {
	silence = isSilent
}

// logFormat formats a log message with optional values and then prints it.
// This is an internal helper function used by the public logging functions.
func logFormat(logType string, format string, values ...any) {
	var logMessage string

	if len(values) == 0 {
		logMessage = format
	} else {
		logMessage = fmt.Sprintf(format, values...)
	}

	logPrint(logType, logMessage)
}

// logPrint is the core logging function that actually writes the message.
// Error messages are always printed, even in silent mode. If a log file is
// configured, messages are written to both stdout and the file.
func logPrint(logType string, message string) {
	logMessage := "[" + logType + "] " + message

	// Error messages bypass silent mode so that a failing run always explains
	// itself before the process exits with a non-zero code.
	if logType == "Error" || !silence {
		logDest.Println(logMessage)
	}

	// Always write to file if configured (even in silent mode)
	if logFileDest != nil {
		logFileDest.Println(logMessage)
	}
}

// Debug logs a debug message (detailed information for developers).
func Debug(format string, values ...any) {
	logFormat("Debug", format, values...)
}

// Info logs an informational message (general information about program execution).
// These messages inform users about what the program is doing.
func Info(format string, values ...any) {
	logFormat("Info", format, values...)
}

// Warn logs a warning message (something unexpected but not fatal).
// The program continues execution after a warning.
func Warn(format string, values ...any) {
	logFormat("Warn", format, values...)
}

// Error logs an error message. It does not terminate the program; callers are
// expected to propagate the error and let main decide the exit code.
func Error(err error) {
	logPrint("Error", err.Error())
}

// Errorf logs a formatted error message without terminating the program.
func Errorf(format string, values ...any) {
	logFormat("Error", format, values...)
}

// SetLogFile sets up logging to a file in addition to stdout.
// The log file will be created with a name based on the application name and
// current date/time. Format: <appName>_YYYY-MM-DD_HH-MM-SS.log
// If logDir is empty, the file will be created in the current directory.
//
// Note: This enables dual logging - messages will be written to both stdout
// and the file. The file is opened in append mode, so new logs are added to
// the end if the file already exists.
func SetLogFile(appName string, logDir string) error {
	now := time.Now()
	timeStr := now.Format("2006-01-02_15-04-05")
	fileName := fmt.Sprintf("%s_%s.log", appName, timeStr)

	var filePath string
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
		filePath = filepath.Join(logDir, fileName)
	} else {
		filePath = fileName
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	logFile = filePath
	logFileDest = log.New(file, "", log.Ldate|log.Ltime)

	return nil
}

// GetLogFilePath returns the current log file path, or empty string if no log
// file is set.
func GetLogFilePath() string {
	return logFile
}
