package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerhand/internal/rng"
	"pokerhand/internal/util"
)

func TestInstance(t *testing.T) {
	config = Config{}
	clear1 := util.SetEnv("POKERHAND_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("POKERHAND_LOG_LEVEL", "warn")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("warn", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(rng.SourceMath, cfg.RNG.Source)
	a.Equal(int64(7), cfg.RNG.Seed)

	// ensure that it's only loaded once
	_ = os.Setenv("POKERHAND_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)

	g, err := cfg.Generator()
	a.NoError(err)
	a.NotNil(g)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("POKERHAND_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, rng.SourceCrypto, cfg.RNG.Source)

	g, err := cfg.Generator()
	assert.NoError(t, err)
	assert.IsType(t, rng.Crypto{}, g)
}

func TestLoad_badSource(t *testing.T) {
	clear1 := util.SetEnv("POKERHAND_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("POKERHAND_RNG_SOURCE", "dice")
	defer clear2()

	assert.NoError(t, Load())
	_, err := Instance().Generator()
	assert.Error(t, err)
}

func TestLoad_badSeed(t *testing.T) {
	clear1 := util.SetEnv("POKERHAND_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("POKERHAND_RNG_SEED", "abc")
	defer clear2()

	assert.Error(t, Load())
}
