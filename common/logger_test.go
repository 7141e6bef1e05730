package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	defer SetLogLevel(Debug)

	SetLogLevel(Debug)
	Debugf("this is a test")
	assert.True(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	SetLogLevel(Info)
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	Debugf("this is a test, no debug")
	Infof("this is a test, info")
	SetLogLevel("")
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	Infof("this is a test, no level")
	Logf(Warn, "The is a test, warn")
	SetLogLevel(Error)
	assert.False(t, DebugEnabled())
	assert.False(t, InfoEnabled())
	assert.False(t, WarnEnabled())
	assert.True(t, ErrorEnabled())
	Infof("this is a test, no error")
	Errorf("this is a test, error")
}

func TestZapLoggerFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "hitcounter.log")
	l := NewZapLogger(&LogConfig{Env: EnvProduction, FileName: fileName, MaxSize: 1, NoCaller: true})
	assert.False(t, l.DebugEnabled())
	assert.True(t, l.InfoEnabled())

	l.Infof("counter %s created", "abc")
	l.Debugf("dropped")
	l.Sync()

	content, err := os.ReadFile(fileName)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "counter abc created")
	assert.NotContains(t, string(content), "dropped")
}

func TestLogLevel(t *testing.T) {
	_, ok := LogLevel("WARN").zapLevel()
	assert.True(t, ok)
	_, ok = LogLevel("verbose").zapLevel()
	assert.False(t, ok)
}
