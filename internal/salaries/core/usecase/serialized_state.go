package usecase

import (
	"context"
	"sync"

	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
)

// SerializedState queues mutations from concurrent callers so that each one reaches the
// State only after the previous notification has finished. Subscribers must not call it.
type SerializedState struct {
	mu    sync.Mutex
	state FilterState
}

var _ FilterState = (*SerializedState)(nil)

func NewSerializedState(state FilterState) *SerializedState {
	return &SerializedState{state: state}
}

func (s *SerializedState) SetFilter(ctx context.Context, sel domain.FilterSelection) (domain.FilterSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetFilter(ctx, sel)
}

func (s *SerializedState) Highlight(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Highlight(ctx, key)
}

func (s *SerializedState) ReplaceDataset(ctx context.Context, ds *domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ReplaceDataset(ctx, ds)
}

func (s *SerializedState) Snapshot() crossfilter.Snapshot {
	return s.state.Snapshot()
}
