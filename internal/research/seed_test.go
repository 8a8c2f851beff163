package research

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeds_BuiltInWhenNoSeedFile(t *testing.T) {
	seeds := Seeds(t.TempDir())
	require.Len(t, seeds, 5)
	assert.Equal(t, "rhizome-editorial", seeds[0].Label)
}

func TestSeeds_LoadsSeedFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"nodes":[{"label":"studio-blog","url":"https://studio.example.com/blog"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026_seed.json"), []byte(content), 0o644))

	seeds := Seeds(dir)
	require.Len(t, seeds, 1)
	assert.Equal(t, "studio-blog", seeds[0].Label)
	assert.Equal(t, "https://studio.example.com/blog", seeds[0].URL)
}

func TestSeeds_UnreadableSeedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad_seed.json"), []byte("{not json"), 0o644))

	seeds := Seeds(dir)
	assert.Len(t, seeds, 5)
}

func TestPickSeed_RotatesDeterministically(t *testing.T) {
	seeds := Seeds(t.TempDir())

	first := PickSeed(seeds, 0, 15)
	again := PickSeed(seeds, 0, 15)
	require.NotNil(t, first)
	assert.Equal(t, first.URL, again.URL)

	shifted := PickSeed(seeds, 1, 15)
	assert.NotEqual(t, first.URL, shifted.URL)
}

func TestPickSeed_EmptyList(t *testing.T) {
	assert.Nil(t, PickSeed(nil, 0, 1))
}
