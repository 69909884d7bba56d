// Package crossfilter holds the shared filter selection and fans every change out to the
// registered chart views.
//
// State is the only writer of the published Dataset and selection. Views read through the
// Event they receive or through Snapshot. Each mutation runs to completion, including the
// synchronous notification of every subscriber, before the next one starts.
package crossfilter

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/aggregate"
	"salary-viz-service/internal/salaries/core/domain"
)

var (
	ErrReentrantMutation = errors.New("state mutated from inside a notification")
	ErrInvalidDimension  = errors.New("invalid filter dimension")
	ErrNilDataset        = errors.New("nil dataset")
)

type EventKind string

const (
	EventDatasetReplaced EventKind = "dataset_replaced"
	EventFilterChanged   EventKind = "filter_changed"
	EventHighlight       EventKind = "highlight"
)

// Event is what subscribers receive. Dataset and Selection are the state after the mutation.
type Event struct {
	Kind      EventKind
	Dataset   *domain.Dataset
	Selection domain.FilterSelection
	Highlight string
}

// Subscriber is notified synchronously, in registration order, with the State unlocked.
// Any mutation of the State made before the last subscriber returns is rejected with
// ErrReentrantMutation, whatever ctx it carries.
type Subscriber interface {
	Notify(ctx context.Context, ev Event)
}

type SubscriberFunc func(ctx context.Context, ev Event)

func (f SubscriberFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

type subscription struct {
	id  uuid.UUID
	sub Subscriber
}

// State does not queue mutations: callers on other goroutines that race a notification get
// ErrReentrantMutation too. Serialize them in front of the State (see usecase.SerializedState).
type State struct {
	mu          sync.Mutex
	dispatching bool

	dataset   *domain.Dataset
	selection domain.FilterSelection
	highlight string
	subs      []subscription

	logger *pterm.Logger
}

func NewState(logger *pterm.Logger) *State {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &State{
		selection: domain.FilterSelection{Dimension: domain.DimensionExperienceLevel},
		logger:    logger,
	}
}

func (s *State) Subscribe(sub Subscriber) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.subs = append(s.subs, subscription{id: id, sub: sub})
	return id
}

func (s *State) Unsubscribe(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sb := range s.subs {
		if sb.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceDataset publishes ds and notifies every view. Selected values that no longer exist
// in ds are dropped.
func (s *State) ReplaceDataset(ctx context.Context, ds *domain.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}
	if err := s.begin(); err != nil {
		return err
	}

	s.dataset = ds
	s.selection = s.selection.Normalize(ds.Categories(s.selection.Dimension))
	s.highlight = ""

	s.logger.Info("dataset published", s.logger.Args(
		"id", ds.ID.String(),
		"source", ds.Source,
		"records", ds.Len(),
		"excluded", ds.Excluded,
	))

	s.publish(ctx, EventDatasetReplaced)
	return nil
}

// SetFilter replaces the selection and notifies every view. Unknown values are ignored.
// It returns the selection actually applied.
func (s *State) SetFilter(ctx context.Context, sel domain.FilterSelection) (domain.FilterSelection, error) {
	if sel.Dimension != "" && !sel.Dimension.Valid() {
		return domain.FilterSelection{}, ErrInvalidDimension
	}
	if err := s.begin(); err != nil {
		return domain.FilterSelection{}, err
	}

	if sel.Dimension == "" {
		sel.Dimension = domain.DimensionExperienceLevel
	}
	applied := sel.Normalize(s.dataset.Categories(sel.Dimension))
	s.selection = applied

	s.logger.Debug("filter changed", s.logger.Args(
		"dimension", string(applied.Dimension),
		"values", applied.Values,
	))

	s.publish(ctx, EventFilterChanged)
	return applied, nil
}

// Highlight publishes a highlighted category key, or clears it with "".
func (s *State) Highlight(ctx context.Context, key string) error {
	if err := s.begin(); err != nil {
		return err
	}

	s.highlight = domain.NormalizeCategory(key)
	s.publish(ctx, EventHighlight)
	return nil
}

type Snapshot struct {
	Dataset   *domain.Dataset
	Selection domain.FilterSelection
	Highlight string
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Dataset: s.dataset, Selection: s.selection, Highlight: s.highlight}
}

// Visible returns the records of the current dataset that pass the current selection.
func (s *State) Visible() []domain.Record {
	snap := s.Snapshot()
	return aggregate.Filter(snap.Dataset.Records(), snap.Selection)
}

// begin takes s.mu for a mutation, or fails while a notification is running.
func (s *State) begin() error {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return ErrReentrantMutation
	}
	return nil
}

// publish must be called with s.mu held by begin. It releases the lock and notifies every
// subscriber with the state just written.
func (s *State) publish(ctx context.Context, kind EventKind) {
	ev := Event{
		Kind:      kind,
		Dataset:   s.dataset,
		Selection: s.selection,
		Highlight: s.highlight,
	}
	subs := slices.Clone(s.subs)
	s.dispatching = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.dispatching = false
		s.mu.Unlock()
	}()
	for _, sb := range subs {
		sb.sub.Notify(ctx, ev)
	}
}
