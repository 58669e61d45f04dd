package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, config{tolerance: 1}.validate())
	assert.Error(t, config{tolerance: 0}.validate())
	assert.Error(t, config{tolerance: 1, debug: true}.validate())
	assert.NoError(t, config{tolerance: 1, debug: true, logFile: "x.log"}.validate())
}

func TestApp_RejectsBadTolerance(t *testing.T) {
	err := makeApp().Run(context.Background(), []string{"chatbox", "--tolerance", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tolerance")
}

func TestApp_RejectsBadLogFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "dir", "chat.log")
	err := makeApp().Run(context.Background(), []string{"chatbox", "--log-file", p})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config{})
	require.NoError(t, err)
	l.Info("dropped")

	p := filepath.Join(t.TempDir(), "chat.log")
	l, err = newLogger(config{logFile: p, debug: true})
	require.NoError(t, err)
	l.Debug("hello from the test")
	_ = l.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello from the test")
}
