package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	value := int64(42)

	tests := []struct {
		name    string
		config  Config
		want    int64
		wantErr bool
	}{
		{name: "manual", config: Config{Mode: ModeManual, Value: &value}, want: 42},
		{name: "manual without value", config: Config{Mode: ModeManual}, wantErr: true},
		{name: "unknown mode", config: Config{Mode: "content"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRandom(t *testing.T) {
	_, err := Calculate(Config{Mode: ModeRandom})
	assert.NoError(t, err)

	// The zero config means random.
	_, err = Calculate(Config{})
	assert.NoError(t, err)
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(7, 3), Derive(7, 3), "derivation must be reproducible")

	seen := make(map[int64]int)
	for i := 0; i < 1000; i++ {
		s := Derive(7, i)
		prev, dup := seen[s]
		require.False(t, dup, "index %d collides with index %d", i, prev)
		seen[s] = i
	}

	assert.NotEqual(t, Derive(7, 0), Derive(8, 0))
	assert.NotEqual(t, Derive(-1, 0), Derive(1, 0))
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("filepath")
	assert.ErrorContains(t, err, "invalid seed mode")
}
