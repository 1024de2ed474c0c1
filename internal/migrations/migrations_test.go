package migrations

import (
	"strings"
	"testing"

	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_PairedUpAndDown(t *testing.T) {
	t.Parallel()

	files, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := 0
	downs := 0

	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups++
			assert.Contains(t, files, strings.TrimSuffix(f, ".up.sql")+".down.sql")
		case strings.HasSuffix(f, ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected migration file %s", f)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestFiles_CreateScratchTable(t *testing.T) {
	t.Parallel()

	data, err := embedded.ReadFile("sql/000001_create_benchmark_scratch.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), config.ScratchTable)
}
