package loadreport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifactqa/quality-assessment/internal/model"
)

func TestStatic_LoadReturnsWrappedCollectionRegardlessOfPath(t *testing.T) {
	c, err := model.NewCollection(nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	loader := NewStatic(c)

	got, err := loader.Load(context.Background(), "any/path/at/all")
	require.NoError(t, err)
	assert.Same(t, c, got)
}
