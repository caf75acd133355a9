package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cribbage-trainer/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CRIBBAGE_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CRIBBAGE_HISTORY_PATH", "override.db")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("test.cribbage.log", cfg.Logfile)
	a.Equal("override.db", cfg.HistoryPath)
	a.Equal("never", cfg.Colors)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("CRIBBAGE_HISTORY_PATH", "override2.db")
	// ensure we aren't using a pointer
	cfg.HistoryPath = "bad"
	cfg = Instance()
	a.Equal("override.db", cfg.HistoryPath)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("CRIBBAGE_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.True(strings.HasSuffix(cfg.Logfile, ".cribbage.log"))
	a.Equal("", cfg.HistoryPath)
	a.Equal("auto", cfg.Colors)
}
