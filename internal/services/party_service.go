package services

import (
	"context"
	"errors"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

type PartyService struct {
	Store *store.Store
}

func NewPartyService(s *store.Store) *PartyService {
	return &PartyService{Store: s}
}

func (s *PartyService) CreateParty(ctx context.Context, req *models.CreatePartyRequest) (*models.Party, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if !req.Type.Valid() {
		return nil, errors.New("type must be supplier or distributor")
	}
	return s.Store.AddParty(ctx, req), nil
}

func (s *PartyService) GetParty(ctx context.Context, id string) (*models.Party, error) {
	p := s.Store.GetParty(id)
	if p == nil {
		return nil, errors.New("party not found")
	}
	return p, nil
}

func (s *PartyService) ListParties(ctx context.Context) []models.Party {
	return s.Store.Parties()
}

// Suppliers returns only parties of type supplier, in insertion order.
func (s *PartyService) Suppliers(ctx context.Context) []models.Party {
	var out []models.Party
	for _, p := range s.Store.Parties() {
		if p.Type == models.PartyTypeSupplier {
			out = append(out, p)
		}
	}
	return out
}

func (s *PartyService) UpdateParty(ctx context.Context, id string, req *models.UpdatePartyRequest) (*models.Party, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if req.Type != nil && !req.Type.Valid() {
		return nil, errors.New("type must be supplier or distributor")
	}
	return s.Store.UpdateParty(ctx, id, req), nil
}

func (s *PartyService) DeleteParty(ctx context.Context, id string) {
	s.Store.DeleteParty(ctx, id)
}
