package common

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Logger 日志接口,默认使用zap实现
type Logger interface {
	Debugf(format string, params ...interface{})
	DebugEnabled() bool
	Infof(format string, params ...interface{})
	InfoEnabled() bool
	Warnf(format string, params ...interface{})
	WarnEnabled() bool
	Errorf(format string, params ...interface{})
	ErrorEnabled() bool
	// SetLevel 设置最低的日志级别
	SetLevel(level LogLevel)
	// Sync 刷新缓冲的日志
	Sync()
}

// LogLevel 日志级别
type LogLevel string

// 日志级别
const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func (p LogLevel) zapLevel() (zapcore.Level, bool) {
	switch LogLevel(strings.ToLower(string(p))) {
	case Debug:
		return zapcore.DebugLevel, true
	case Info:
		return zapcore.InfoLevel, true
	case Warn:
		return zapcore.WarnLevel, true
	case Error:
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

var (
	logger      Logger = NewZapLogger(&LogConfig{Env: EnvDevelopment})
	loggerMu    sync.Mutex
	loggerInitd bool
)

// initLogger 使用logConfig替换默认的logger,只能初始化一次
func initLogger(logConfig *LogConfig) error {
	if logConfig == nil {
		return nil
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if loggerInitd {
		Warnf("logger has been already inited")
		return nil
	}
	if logConfig.Level != "" {
		if _, ok := LogLevel(logConfig.Level).zapLevel(); !ok {
			return fmt.Errorf("invalid log level %q", logConfig.Level)
		}
	}
	fmt.Fprintf(os.Stderr, "init logger,env:%s,file:%s\n", logConfig.Env, logConfig.FileName)
	old := logger
	logger = NewZapLogger(logConfig)
	old.Sync()
	loggerInitd = true
	return nil
}

// SetLogLevel 设置全局logger的日志级别,无效的级别被忽略
func SetLogLevel(level LogLevel) {
	logger.SetLevel(level)
}

// SyncLog 刷新全局logger
func SyncLog() {
	logger.Sync()
}

// Debugf debug
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// DebugEnabled debug
func DebugEnabled() bool {
	return logger.DebugEnabled()
}

// Infof info
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// InfoEnabled info
func InfoEnabled() bool {
	return logger.InfoEnabled()
}

// Warnf warn
func Warnf(format string, params ...interface{}) {
	logger.Warnf(format, params...)
}

// WarnEnabled warn
func WarnEnabled() bool {
	return logger.WarnEnabled()
}

// Errorf error
func Errorf(format string, params ...interface{}) {
	logger.Errorf(format, params...)
}

// ErrorEnabled error
func ErrorEnabled() bool {
	return logger.ErrorEnabled()
}

// Logf 使用指定的级别记录日志
func Logf(level LogLevel, format string, params ...interface{}) {
	switch level {
	case Debug:
		logger.Debugf(format, params...)
	case Warn:
		logger.Warnf(format, params...)
	case Error:
		logger.Errorf(format, params...)
	default:
		logger.Infof(format, params...)
	}
}
