package decoders

import (
	"context"
	"fmt"
	"sync"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders/layout"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders/pickplace"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders/snapshot"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders/trajectory"
	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.DecoderRegistry = (*Registry)(nil)

// Registry routes raw records to the decoder registered for their kind.
type Registry struct {
	mu       sync.RWMutex
	decoders map[domain.RecordKind]driven.RecordDecoder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[domain.RecordKind]driven.RecordDecoder)}
}

// NewDefaultRegistry creates a registry with all dataset decoders
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(pickplace.New())
	r.Register(trajectory.New())
	r.Register(layout.New())
	r.Register(snapshot.New())
	return r
}

// Register adds a decoder for its supported kinds.
// A later registration for the same kind replaces the earlier one.
func (r *Registry) Register(decoder driven.RecordDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range decoder.Kinds() {
		r.decoders[kind] = decoder
	}
}

// Decode routes the record to its decoder.
func (r *Registry) Decode(ctx context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	r.mu.RLock()
	decoder, ok := r.decoders[raw.Kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, raw.Kind)
	}
	return decoder.Decode(ctx, raw)
}
