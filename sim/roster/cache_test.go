package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MemoizesByPath(t *testing.T) {
	path := writeSpec(t, sampleLeague)
	cache := NewCache()

	first, err := cache.Load(path)
	require.NoError(t, err)
	second, err := cache.Load(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated loads return the identical league")
}

func TestCache_InstancesAreIndependent(t *testing.T) {
	path := writeSpec(t, sampleLeague)

	first, err := NewCache().Load(path)
	require.NoError(t, err)
	second, err := NewCache().Load(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second, "caches never share state implicitly")
}

func TestCache_Invalidate(t *testing.T) {
	path := writeSpec(t, sampleLeague)
	cache := NewCache()

	first, err := cache.Load(path)
	require.NoError(t, err)

	cache.Invalidate(path)
	second, err := cache.Load(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestCache_LoadErrorNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	cache := NewCache()

	_, err := cache.Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(sampleLeague), 0o644))
	league, err := cache.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, league)
}
