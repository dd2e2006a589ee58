package agent

import (
	"context"
	"sync"
)

// turnLocks admits one turn at a time per session id. Entries are dropped once no
// turn holds or waits for them.
type turnLocks struct {
	mu    sync.Mutex
	slots map[string]*turnSlot
}

type turnSlot struct {
	held  chan struct{}
	users int
}

func newTurnLocks() *turnLocks {
	return &turnLocks{slots: make(map[string]*turnSlot)}
}

// acquire blocks until the session is free or ctx is done. The returned func
// releases the session and must be called exactly once.
func (l *turnLocks) acquire(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[sessionID]
	if !ok {
		slot = &turnSlot{held: make(chan struct{}, 1)}
		l.slots[sessionID] = slot
	}
	slot.users++
	l.mu.Unlock()

	select {
	case slot.held <- struct{}{}:
		return func() {
			<-slot.held
			l.leave(sessionID, slot)
		}, nil
	case <-ctx.Done():
		l.leave(sessionID, slot)
		return nil, ctx.Err()
	}
}

func (l *turnLocks) leave(sessionID string, slot *turnSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.users--
	if slot.users == 0 {
		delete(l.slots, sessionID)
	}
}

func (l *turnLocks) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
