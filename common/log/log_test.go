// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/arena/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nonsense"))
}

func TestFileLog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "arena.log")
	cfg := &types.Log{LogFile: file, Loglevel: "info"}
	SetFileLog(cfg)
	defer SetLogLevel("error")
	assert.Equal(t, "error", cfg.LogConsoleLevel)

	New("module", "test").Info("hello", "k", 1)
	require.Nil(t, rotateLogger.Close())
	data, err := os.ReadFile(file)
	require.Nil(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "module=test")
}
