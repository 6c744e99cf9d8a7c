package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	console *logrus.Logger
	file    *logrus.Logger
}

var defaultLogger *Logger

func init() {
	// 控制台日志配置
	console := logrus.New()
	console.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	console.SetOutput(os.Stdout)
	console.SetLevel(logrus.DebugLevel)

	// 文件日志配置
	file := logrus.New()
	file.SetFormatter(&logrus.JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	file.SetLevel(logrus.InfoLevel)

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		console.Errorf("无法创建日志目录: %v", err)
	}

	// 使用lumberjack进行日志轮转
	file.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "consult-trace.log"),
		MaxSize:    10,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
	})

	defaultLogger = &Logger{console: console, file: file}
}

func Infof(format string, args ...any) {
	defaultLogger.console.Infof(format, args...)
	defaultLogger.file.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	defaultLogger.console.Warnf(format, args...)
	defaultLogger.file.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	defaultLogger.console.Errorf(format, args...)
	defaultLogger.file.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	defaultLogger.console.Fatalf(format, args...)
	defaultLogger.file.Fatalf(format, args...)
}

func Debugf(format string, args ...any) {
	defaultLogger.console.Debugf(format, args...)
	defaultLogger.file.Debugf(format, args...)
}
