package binomial

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/contribsys/binheap/util"
	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	for input, want := range map[string]Order{
		"":      MaxFirst,
		"max":   MaxFirst,
		" MIN ": MinFirst,
		"min":   MinFirst,
	} {
		order, err := ParseOrder(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, order, input)
	}

	_, err := ParseOrder("fifo")
	assert.ErrorIs(t, err, ErrUnknownOrder)
	assert.Contains(t, err.Error(), "fifo")

	assert.Equal(t, "min", MinFirst.String())
	assert.Equal(t, "max", MaxFirst.String())
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
[queue]
order = "min"

[log]
level = "warn"
`)
	assert.NoError(t, err)
	assert.Equal(t, "min", cfg.Queue.Order)
	assert.Equal(t, "warn", cfg.Log.Level)

	order, err := cfg.Order()
	assert.NoError(t, err)
	assert.Equal(t, MinFirst, order)

	_, err = ParseConfig("[queue\norder = ")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse queue config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.toml")
	err := os.WriteFile(path, []byte("[queue]\norder = \"max\"\n"), 0o644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "max", cfg.Queue.Order)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestNewFromConfig(t *testing.T) {
	defer util.InitLoggerTo(io.Discard, "info", false)

	cfg, err := ParseConfig("[queue]\norder = \"min\"\n[log]\nlevel = \"debug\"\n")
	assert.NoError(t, err)

	h, err := NewFromConfig[string](cfg)
	assert.NoError(t, err)
	assert.True(t, util.LogDebug)

	for _, s := range []string{"pear", "apple", "fig"} {
		h.Push(s)
	}
	top, err := h.Top()
	assert.NoError(t, err)
	assert.Equal(t, "apple", top)

	h2, err := NewFromConfig[int](&Config{})
	assert.NoError(t, err)
	h2.Push(1)
	h2.Push(2)
	top2, _ := h2.Top()
	assert.Equal(t, 2, top2)

	_, err = NewFromConfig[int](&Config{Queue: QueueConfig{Order: "lifo"}})
	assert.ErrorIs(t, err, ErrUnknownOrder)

	_, err = NewFromConfig[int](&Config{Log: LogConfig{Level: "chatty"}})
	assert.Error(t, err)
}
