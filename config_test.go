package delaunay

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 10.0, config.Margin)
	assert.Equal(t, 1000, config.MaxAttempts)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("margin: 250\nseed: 42\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{Margin: 250, MaxAttempts: DefaultMaxAttempts, Seed: 42}, config)
	})

	t.Run("empty document", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("margn: 5\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, doc := range []string{
			"margin: 0\n",
			"margin: -4\n",
			"max_attempts: -1\n",
			"interval: -2\n",
		} {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err, doc)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	config.Margin = math.Inf(1)
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Margin = math.NaN()
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.MaxAttempts = 0
	assert.NoError(t, config.Validate(), "zero attempts just means no sampling")
}
