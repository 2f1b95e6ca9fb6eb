package transform

import (
	"sync"
	"unique"

	"go.trai.ch/domx/internal/core/domain"
)

// ledger tracks the TransformRecord of every identity seen in the session.
type ledger struct {
	mu      sync.Mutex
	records map[unique.Handle[string]]*domain.TransformRecord
	clock   uint64 // source of generations, shared by all identities
}

func newLedger() *ledger {
	return &ledger{
		records: make(map[unique.Handle[string]]*domain.TransformRecord),
	}
}

// generation returns the current generation of identity, 0 if it has no record.
func (l *ledger) generation(identity string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec, ok := l.records[unique.Make(identity)]; ok {
		return rec.Generation
	}
	return 0
}

// commit records a completed transform that started at generation gen.
// It returns false without changing anything if identity was invalidated since then.
// When track is false the seen flag is neither read nor set and the status is always fresh.
func (l *ledger) commit(identity string, gen uint64, track bool) (domain.Status, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := unique.Make(identity)
	rec, ok := l.records[key]
	if !ok {
		if gen != 0 {
			return domain.StatusFresh, false
		}
		rec = &domain.TransformRecord{Identity: identity}
		l.records[key] = rec
	}
	if rec.Generation != gen {
		return domain.StatusFresh, false
	}

	status := domain.StatusFresh
	if track {
		if rec.Seen {
			status = domain.StatusCached
		}
		rec.Seen = true
	}
	rec.LastStatus = status
	return status, true
}

// invalidate clears the seen flag of identity and moves it to a new generation.
func (l *ledger) invalidate(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := unique.Make(identity)
	rec, ok := l.records[key]
	if !ok {
		rec = &domain.TransformRecord{Identity: identity}
		l.records[key] = rec
	}
	l.clock++
	rec.Generation = l.clock
	rec.Seen = false
}

// remove drops the record of identity.
func (l *ledger) remove(identity string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, unique.Make(identity))
}

// record returns a copy of the record of identity.
func (l *ledger) record(identity string) (domain.TransformRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[unique.Make(identity)]
	if !ok {
		return domain.TransformRecord{}, false
	}
	return *rec, true
}

func (l *ledger) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
