package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
}

func Configure(config *Configuration) error {
	logger.SetLevel(config.Level)

	// console output keeps colors, file output does not
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true,
	})

	// Configure may run more than once per process, hooks are rebuilt each time
	logger.ReplaceHooks(make(logrus.LevelHooks))
	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel} {
			writer, err := setupWriter(config.LogPath, level.String())
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: config.TimeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		}
		logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	logger.SetOutput(os.Stderr)
	return nil
}

// SetOutput redirects console output, tests use it to capture log lines
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	writer, err := rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("setup %s log writer: %w", level, err)
	}
	return writer, nil
}

func appendGoroutineID(msg string) string {
	return fmt.Sprintf("[g: %v] %s", runtime.NumGoroutine(), msg)
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(appendGoroutineID(format), args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(appendGoroutineID(format), args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(appendGoroutineID(format), args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(appendGoroutineID(format), args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
