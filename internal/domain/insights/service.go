package insights

import (
	"context"
	"sync"
	"time"
)

// Service serves analytics from an in-memory snapshot. Refresh recomputes
// the snapshot from the store; everything else is a lock-guarded read, so
// attendance, leave, and payroll commands never wait on an analytics pass.
type Service struct {
	store    StoreAPI
	lookback time.Duration

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewService(store StoreAPI, lookback time.Duration) *Service {
	return &Service{store: store, lookback: lookback}
}

func (s *Service) Refresh(ctx context.Context) error {
	since := time.Now().UTC().Add(-s.lookback)
	histories, err := s.store.EmployeeHistories(ctx, since)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Suggestions: Suggest(histories),
		Predictions: make([]Prediction, 0, len(histories)),
		GeneratedAt: time.Now().UTC(),
		ByEmployee:  make(map[string]Prediction, len(histories)),
	}
	for _, h := range histories {
		pred := Predict(h)
		snap.Predictions = append(snap.Predictions, pred)
		snap.ByEmployee[h.EmployeeID] = pred
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return nil
}

func (s *Service) TaskSuggestions() []Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Suggestions
}

func (s *Service) LatenessPredictions() []Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Predictions
}

// LatenessPrediction returns the cached prediction for one employee. An
// employee absent from the snapshot gets the neutral low-risk result.
func (s *Service) LatenessPrediction(employeeID string) Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pred, ok := s.snapshot.ByEmployee[employeeID]; ok {
		return pred
	}
	return Predict(EmployeeHistory{EmployeeID: employeeID})
}

func (s *Service) GeneratedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.GeneratedAt
}

// Recommendation bypasses the snapshot: it reads the single employee's
// history directly so the advisory text reflects current data.
func (s *Service) Recommendation(ctx context.Context, employeeID string) (string, error) {
	since := time.Now().UTC().Add(-s.lookback)
	h, err := s.store.EmployeeHistory(ctx, employeeID, since)
	if err != nil {
		return "", err
	}
	return Recommend(h), nil
}
