package customers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(cs []Customer) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.CustomerID)
	}
	return out
}

func TestRepository_Queries(t *testing.T) {
	ctx := context.Background()
	r := NewRepository(DefaultSeed())

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(r.All(ctx)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(r.ByState(ctx, "CA")))
	assert.Empty(t, r.ByState(ctx, "ca"), "state is matched exactly")
	assert.Equal(t, []string{"1", "3"}, ids(r.ByCity(ctx, "Los Angeles")))
	assert.Empty(t, r.ByCity(ctx, "los angeles"))
	assert.Empty(t, r.ByCity(ctx, "Nowhere"))
	assert.NotNil(t, r.ByCity(ctx, "Nowhere"))

	c, err := r.Get(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Lone Star Motors", c.Name)

	_, err = r.Get(ctx, "99")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestNewRepository_CopiesInput(t *testing.T) {
	seed := DefaultSeed()
	r := NewRepository(seed)
	seed[0].Name = "changed"

	c, err := r.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Auto Parts", c.Name)
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"customerId":"a","name":"A","state":"WA"}]`), 0o600))
	got, err := LoadSeed(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []Customer{{CustomerID: "a", Name: "A", State: "WA"}}, got)

	yamlPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- customerId: b\n  city: Reno\n"), 0o600))
	got, err = LoadSeed(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []Customer{{CustomerID: "b", City: "Reno"}}, got)

	_, err = LoadSeed(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
