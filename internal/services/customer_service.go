package services

import (
	"context"
	"errors"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

type CustomerService struct {
	Store *store.Store
}

func NewCustomerService(s *store.Store) *CustomerService {
	return &CustomerService{Store: s}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	return s.Store.AddCustomer(ctx, req), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	c := s.Store.GetCustomer(id)
	if c == nil {
		return nil, errors.New("customer not found")
	}
	return c, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) []models.Customer {
	return s.Store.Customers()
}

// UpdateCustomer applies a partial update. An unknown id is a silent
// no-op and returns nil.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, errors.New("name cannot be empty")
	}
	return s.Store.UpdateCustomer(ctx, id, req), nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) {
	s.Store.DeleteCustomer(ctx, id)
}
