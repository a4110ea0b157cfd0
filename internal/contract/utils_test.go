package contract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateuslg/flightmart/schema"
)

func TestGetPlainChangeLabel(t *testing.T) {
	assert.Equal(t, "HIGHER", GetPlainChangeLabel(schema.PriceChangeHigher))
	assert.Equal(t, "LOWER", GetPlainChangeLabel(schema.PriceChangeLower))
	assert.Equal(t, "SAME", GetPlainChangeLabel(schema.PriceChangeSame))
	assert.Equal(t, "N/A", GetPlainChangeLabel(schema.PriceChangeNA))
}

func TestGetColorChangeLabelKeepsText(t *testing.T) {
	// Regardless of escape codes, the label text must survive.
	for _, change := range []schema.PriceChange{
		schema.PriceChangeHigher,
		schema.PriceChangeLower,
		schema.PriceChangeSame,
		schema.PriceChangeNA,
	} {
		assert.Contains(t, GetColorChangeLabel(change), string(change))
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, "/dev/stdout", f.Name())

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

func TestTruncateKey(t *testing.T) {
	key := "L1_20260416_20260501_JFK_LAX"
	assert.Equal(t, key, TruncateKey(key, 0))
	assert.Equal(t, key, TruncateKey(key, len(key)))
	assert.Equal(t, "L1_20260416_2...", TruncateKey(key, 16))
	assert.Equal(t, "L1", TruncateKey(key, 2))
}

func TestGetWarehouseDBFilePath(t *testing.T) {
	path := GetWarehouseDBFilePath()
	assert.Equal(t, ".flightmart.db", filepath.Base(path))
}
