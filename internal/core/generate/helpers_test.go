package generate_test

import (
	"testing"

	"synthetic-data-generator/internal/core/datagen"
	"synthetic-data-generator/internal/core/types"

	"github.com/stretchr/testify/require"
)

func mustGenerator(t *testing.T, kind types.Kind) datagen.Generator {
	t.Helper()
	gen, err := datagen.ForKind(kind)
	require.NoError(t, err)
	return gen
}
