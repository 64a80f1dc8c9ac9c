package store

import (
	"context"

	"aqua-backend/internal/models"
)

// Parties returns a snapshot of the party collection in insertion order.
func (s *Store) Parties() []models.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.parties)
}

// GetParty returns the party with the given id, or nil.
func (s *Store) GetParty(id string) *models.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.parties {
		if s.parties[i].ID == id {
			p := s.parties[i]
			return &p
		}
	}
	return nil
}

// AddParty appends a new party with a fresh id and creation timestamp.
func (s *Store) AddParty(ctx context.Context, req *models.CreatePartyRequest) *models.Party {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Party{
		ID:        s.newID(),
		Name:      req.Name,
		Type:      req.Type,
		Contact:   req.Contact,
		Address:   req.Address,
		Balance:   req.Balance,
		CreatedAt: s.now(),
	}
	s.parties = append(s.parties, p)
	s.persist(ctx, KeyParties, s.parties)
	return &p
}

// UpdateParty merges non-nil patch fields in place; unknown id is a no-op.
func (s *Store) UpdateParty(ctx context.Context, id string, req *models.UpdatePartyRequest) *models.Party {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].ID != id {
			continue
		}
		p := &s.parties[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.Contact != nil {
			p.Contact = *req.Contact
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.Balance != nil {
			p.Balance = *req.Balance
		}
		s.persist(ctx, KeyParties, s.parties)
		out := *p
		return &out
	}
	return nil
}

// DeleteParty removes the party with the given id; unknown id is a no-op.
func (s *Store) DeleteParty(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].ID == id {
			s.parties = append(s.parties[:i], s.parties[i+1:]...)
			s.persist(ctx, KeyParties, s.parties)
			return true
		}
	}
	return false
}
