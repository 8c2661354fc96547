package sessionstore

import (
	"context"
	"sync"
	"time"

	"tidybook/internal/domain/booking"
	"tidybook/internal/infra"
	"tidybook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Memory keeps draft sessions in process. Every Get and Put deep-copies
// the draft so callers never share mutable state with the store. Expired
// entries are dropped lazily on access.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	draft     booking.Draft
	expiresAt time.Time
}

func NewMemory(ttl time.Duration, clk clock.Clock) *Memory {
	return &Memory{
		ttl:     ttl,
		clock:   clk,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (*booking.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, infra.WrapRepoErr("draft session not found", nil, infra.KindNotFound)
	}
	if m.clock.Now().After(entry.expiresAt) {
		delete(m.entries, id)
		return nil, infra.WrapRepoErr("draft session expired", nil, infra.KindNotFound)
	}

	var draft booking.Draft
	if err := copier.CopyWithOption(&draft, &entry.draft, copier.Option{DeepCopy: true}); err != nil {
		return nil, infra.WrapRepoErr("failed to copy draft", err)
	}
	return &draft, nil
}

func (m *Memory) Put(_ context.Context, id uuid.UUID, draft *booking.Draft) error {
	var stored booking.Draft
	if err := copier.CopyWithOption(&stored, draft, copier.Option{DeepCopy: true}); err != nil {
		return infra.WrapRepoErr("failed to copy draft", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = memoryEntry{
		draft:     stored,
		expiresAt: m.clock.Now().Add(m.ttl),
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return infra.WrapRepoErr("draft session not found", nil, infra.KindNotFound)
	}
	delete(m.entries, id)
	return nil
}
