package store

import (
	"context"

	"aqua-backend/internal/models"
)

// Customers returns a snapshot of the customer collection in insertion order.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.customers)
}

// GetCustomer returns the customer with the given id, or nil.
func (s *Store) GetCustomer(id string) *models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c
		}
	}
	return nil
}

// AddCustomer appends a new customer with a fresh id and creation timestamp.
func (s *Store) AddCustomer(ctx context.Context, req *models.CreateCustomerRequest) *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Customer{
		ID:        s.newID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Balance:   req.Balance,
		CreatedAt: s.now(),
	}
	s.customers = append(s.customers, c)
	s.persist(ctx, KeyCustomers, s.customers)
	return &c
}

// UpdateCustomer merges the non-nil patch fields into the customer in
// place, preserving id, creation timestamp and collection position.
// An unknown id is a no-op and returns nil.
func (s *Store) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Balance != nil {
			c.Balance = *req.Balance
		}
		s.persist(ctx, KeyCustomers, s.customers)
		out := *c
		return &out
	}
	return nil
}

// DeleteCustomer removes the customer with the given id. Historical
// sales keep their denormalized customer name; nothing cascades.
// An unknown id is a no-op.
func (s *Store) DeleteCustomer(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.persist(ctx, KeyCustomers, s.customers)
			return true
		}
	}
	return false
}
