package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
	err    error
}

func (s *recordingSink) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *recordingSink) Events() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]audit.Event(nil), s.events...)
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Write(ctx context.Context, _ audit.Event) error {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}

func TestDispatcher_DeliversToEverySink(t *testing.T) {
	t.Parallel()

	first, second := &recordingSink{}, &recordingSink{}
	d := audit.NewDispatcher(zap.NewNop(), 10, first, second)

	d.Dispatch(audit.Event{ProfessionalID: "1", Action: audit.ActionSessionBooked, Day: "2022-01-01"})
	require.NoError(t, d.Close(context.Background()))

	for _, sink := range []*recordingSink{first, second} {
		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, audit.ActionSessionBooked, events[0].Action)
		assert.NotEqual(t, uuid.Nil, events[0].ID)
		assert.False(t, events[0].OccurredAt.IsZero())
	}
}

func TestDispatcher_SinkErrorIsLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	failing := &recordingSink{err: errors.New("boom")}
	ok := &recordingSink{}
	d := audit.NewDispatcher(zap.New(core), 10, failing, ok)

	d.Dispatch(audit.Event{ProfessionalID: "1", Action: audit.ActionAvailabilityDeleted})
	require.NoError(t, d.Close(context.Background()))

	assert.Len(t, ok.Events(), 1)
	assert.Equal(t, 1, logs.FilterMessage("audit sink failed").Len())
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	sink := &blockingSink{release: make(chan struct{})}
	d := audit.NewDispatcher(zap.New(core), 1, sink)

	// One event is held by the worker, one fills the queue, the rest drop.
	for i := 0; i < 5; i++ {
		d.Dispatch(audit.Event{ProfessionalID: "1", Action: audit.ActionSessionBooked})
	}

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("audit queue full, dropping event").Len() >= 3
	}, time.Second, 10*time.Millisecond)

	close(sink.release)
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{}
	d := audit.NewDispatcher(zap.New(core), 1, sink)
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	d.Dispatch(audit.Event{ProfessionalID: "1", Action: audit.ActionSessionBooked})

	assert.Empty(t, sink.Events())
	assert.Equal(t, 1, logs.FilterMessage("audit dispatcher closed, dropping event").Len())
}
