package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/computor/pkg/adapters/file"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	tests.ReportCacheContractTest(t, file.New(t.TempDir()))
}

func TestFileStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(dir)

	first, err := domain.NewReport("X = 1", domain.NewPolynomial(0, 1, -1))
	require.NoError(t, err)
	second, err := domain.NewReport("X = 2", domain.NewPolynomial(0, 1, -2))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "k", first))
	require.NoError(t, store.Save(ctx, "k", second))

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, loaded.Solution.Roots)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temp files should be cleaned up")
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nope"))
	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))

	_, err := file.New(dir).List(context.Background())
	assert.Error(t, err)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".computor", "cache"), file.New("").BasePath)
}
