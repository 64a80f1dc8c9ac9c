package store

import (
	"context"

	"aqua-backend/internal/models"
)

// FishBoxes returns a snapshot of the fish box collection in insertion order.
func (s *Store) FishBoxes() []models.FishBox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.fishBoxes)
}

// GetFishBox returns the box with the given id, or nil.
func (s *Store) GetFishBox(id string) *models.FishBox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.fishBoxes {
		if s.fishBoxes[i].ID == id {
			b := s.fishBoxes[i]
			return &b
		}
	}
	return nil
}

// AddFishBox appends the box with a fresh id. Boxes carry an explicit
// business date instead of a creation timestamp.
func (s *Store) AddFishBox(ctx context.Context, box models.FishBox) *models.FishBox {
	s.mu.Lock()
	defer s.mu.Unlock()

	box.ID = s.newID()
	s.fishBoxes = append(s.fishBoxes, box)
	s.persist(ctx, KeyFishBoxes, s.fishBoxes)
	return &box
}

// UpdateFishBox applies patch to the box in place; unknown id is a
// no-op. Status legality is the service's concern, not the store's.
func (s *Store) UpdateFishBox(ctx context.Context, id string, patch func(*models.FishBox)) *models.FishBox {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fishBoxes {
		if s.fishBoxes[i].ID != id {
			continue
		}
		patch(&s.fishBoxes[i])
		s.persist(ctx, KeyFishBoxes, s.fishBoxes)
		out := s.fishBoxes[i]
		return &out
	}
	return nil
}

// DeleteFishBox removes the box with the given id. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteFishBox(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fishBoxes {
		if s.fishBoxes[i].ID == id {
			s.fishBoxes = append(s.fishBoxes[:i], s.fishBoxes[i+1:]...)
			s.persist(ctx, KeyFishBoxes, s.fishBoxes)
			return true
		}
	}
	return false
}
