package submission

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore process-local store, contents are lost on exit.
type MemoryStore struct {
	submissions map[string]*Submission
	mu          sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		submissions: make(map[string]*Submission),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.submissions[s.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.ID)
	}
	m.submissions[s.ID] = cloneSubmission(s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSubmission(s), nil
}

// List oldest first.
func (m *MemoryStore) List(_ context.Context) ([]*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Submission, 0, len(m.submissions))
	for _, s := range m.submissions {
		out = append(out, cloneSubmission(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.submissions)
}

func (m *MemoryStore) Close() error { return nil }

// cloneSubmission callers never hold a pointer into the map
func cloneSubmission(s *Submission) *Submission {
	c := *s
	if s.InvestorInformation.SecondInvestor != nil {
		second := *s.InvestorInformation.SecondInvestor
		c.InvestorInformation.SecondInvestor = &second
	}
	return &c
}
