package audit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type fakeStore struct {
	mu      sync.Mutex
	logs    []models.AuditLog
	block   chan struct{}
	started chan struct{}
}

func (s *fakeStore) SaveAuditLog(ctx context.Context, l *models.AuditLog) error {
	if s.block != nil {
		s.started <- struct{}{}
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, *l)
	return nil
}

func (s *fakeStore) ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLog(nil), s.logs...), int64(len(s.logs)), nil
}

func TestLoggerEncodesMetadata(t *testing.T) {
	store := &fakeStore{}
	user := uuid.New()
	entity := uuid.New()

	err := New(store).Log(context.Background(), Event{
		UserID:   &user,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &entity,
		Metadata: map[string]any{"nights": 2},
	})
	require.NoError(t, err)
	require.Len(t, store.logs, 1)

	got := store.logs[0]
	require.Equal(t, "booking_created", got.Action)
	require.Equal(t, entity, *got.EntityID)

	var meta map[string]int
	require.NoError(t, json.Unmarshal(got.Metadata, &meta))
	require.Equal(t, 2, meta["nights"])
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(New(store), 10, log.NewNopLogger())

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: "profile_updated"})
	}
	d.Close()
	d.Close()

	require.Len(t, store.logs, 5)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	store := &fakeStore{block: make(chan struct{}), started: make(chan struct{}, 1)}
	d := NewDispatcher(New(store), 1, log.NewNopLogger())

	d.Dispatch(Event{Action: "first"})
	<-store.started

	d.Dispatch(Event{Action: "queued"})
	d.Dispatch(Event{Action: "dropped"})

	close(store.block)
	go func() {
		for range store.started {
		}
	}()
	d.Close()
	close(store.started)

	require.Len(t, store.logs, 2)
	require.Equal(t, "first", store.logs[0].Action)
	require.Equal(t, "queued", store.logs[1].Action)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(New(store), 4, log.NewNopLogger())

	d.Dispatch(Event{Action: "before"})
	d.Close()

	require.NotPanics(t, func() { d.Dispatch(Event{Action: "late"}) })
	require.Len(t, store.logs, 1)
	require.Equal(t, "before", store.logs[0].Action)
}

func TestDispatchRacesClose(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(New(store), 1000, log.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "concurrent"})
			}
		}()
	}
	d.Close()
	wg.Wait()

	logs, _, err := store.ListAuditLogs(context.Background(), Filter{})
	require.NoError(t, err)
	require.LessOrEqual(t, len(logs), 400)
}
