package decoders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

func TestRegistry_Decode(t *testing.T) {
	registry := NewDefaultRegistry()
	ctx := context.Background()

	t.Run("routes pick place records", func(t *testing.T) {
		raw := &domain.RawRecord{
			Kind:    domain.KindPickPlace,
			Content: []byte(`[]`),
		}

		result, err := registry.Decode(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, domain.KindPickPlace, result.Kind)
	})

	t.Run("routes trajectory records", func(t *testing.T) {
		raw := &domain.RawRecord{
			Kind:    domain.KindObjectTrajectory,
			Object:  "011 banana",
			Content: []byte(`[]`),
		}

		result, err := registry.Decode(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, domain.KindObjectTrajectory, result.Kind)
		assert.Equal(t, "011 banana", result.Object)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		raw := &domain.RawRecord{Kind: "mystery"}

		_, err := registry.Decode(ctx, raw)
		assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
	})

	t.Run("rejects nil records", func(t *testing.T) {
		_, err := registry.Decode(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
