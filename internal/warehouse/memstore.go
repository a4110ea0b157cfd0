package warehouse

import (
	"sync"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// memStore keeps the warehouse tables in process memory. It backs the "none"
// backend, where a run computes its views without persisting anything.
type memStore struct {
	mu       sync.RWMutex
	facts    []schema.ItineraryObservation
	segments []schema.FlightSegment
}

var _ contract.WarehouseStore = &memStore{} // Compile-time check

func newMemStore() *memStore {
	return &memStore{}
}

func (ms *memStore) ReplaceAll(facts []schema.ItineraryObservation, segments []schema.FlightSegment) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.facts = append([]schema.ItineraryObservation(nil), facts...)
	ms.segments = append([]schema.FlightSegment(nil), segments...)
	return nil
}

func (ms *memStore) LoadFacts() ([]schema.ItineraryObservation, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]schema.ItineraryObservation(nil), ms.facts...), nil
}

func (ms *memStore) LoadSegments() ([]schema.FlightSegment, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]schema.FlightSegment(nil), ms.segments...), nil
}

func (ms *memStore) GetStatus() (schema.WarehouseStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return schema.WarehouseStatus{
		Backend:   string(schema.NoneBackend),
		Connected: true,
		FactRows:  int64(len(ms.facts)),
		TableSizes: map[string]int64{
			factTable:    int64(len(ms.facts)),
			segmentTable: int64(len(ms.segments)),
		},
	}, nil
}

func (ms *memStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.facts = nil
	ms.segments = nil
	return nil
}

func (ms *memStore) Close() error {
	return nil
}
