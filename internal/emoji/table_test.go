package emoji_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookups(t *testing.T) {
	table := emoji.Default()

	assert.Contains(t, table.DamageType("Slash"), "slash")
	assert.Contains(t, table.Polarity("MADURAI"), "maudrai")
	assert.Empty(t, table.Polarity("unknown"))
	assert.Empty(t, table.DamageType("total"))
}

func TestParse_OverridesSections(t *testing.T) {
	table, err := emoji.Parse([]byte(`
polarities:
  Madurai: "<:m:1>"
mastery_rank: "<:mr:2>"
`))
	require.NoError(t, err)

	assert.Equal(t, "<:m:1>", table.Polarity("madurai"))
	assert.Empty(t, table.Polarity("vazarin"), "a polarities section replaces the defaults")
	assert.Contains(t, table.DamageType("heat"), "heat", "missing sections keep defaults")
	assert.Equal(t, "<:mr:2>", table.MasteryRank)
}

func TestParse_Invalid(t *testing.T) {
	_, err := emoji.Parse([]byte("polarities: [not, a, map]"))
	assert.Error(t, err)
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mastery_rank: \"<:mr:1>\"\n"), 0o600))

	store, err := emoji.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "<:mr:1>", store.Table().MasteryRank)

	require.NoError(t, os.WriteFile(path, []byte("polarities: [broken"), 0o600))
	assert.Error(t, store.Reload())
	assert.Equal(t, "<:mr:1>", store.Table().MasteryRank)
}

func TestStore_NoPath(t *testing.T) {
	store, err := emoji.NewStore("")
	require.NoError(t, err)

	assert.Equal(t, emoji.Default(), store.Table())
	assert.Error(t, store.Reload())
	assert.NoError(t, store.Watch(context.Background()))
}

func TestStore_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mastery_rank: \"<:mr:1>\"\n"), 0o600))

	store, err := emoji.NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte("mastery_rank: \"<:mr:9>\"\n"), 0o600))

	assert.Eventually(t, func() bool {
		return store.Table().MasteryRank == "<:mr:9>"
	}, 5*time.Second, 20*time.Millisecond)
}
