package models

import "time"

type FishBoxStatus string

const (
	BoxReceived FishBoxStatus = "received"
	BoxSent     FishBoxStatus = "sent"
	BoxInStock  FishBoxStatus = "in_stock"
)

// Valid reports whether s is a known fish box status.
func (s FishBoxStatus) Valid() bool {
	return s == BoxReceived || s == BoxSent || s == BoxInStock
}

type FishGrade string

const (
	GradeA FishGrade = "A"
	GradeB FishGrade = "B"
	GradeC FishGrade = "C"
)

// FishBox is a physical box lot. SupplierID is set when the box is
// received, CustomerID when it is sent. Status only moves forward:
// received/in_stock boxes can be shipped, sent is terminal.
type FishBox struct {
	ID         string        `json:"id"`
	BoxNumber  string        `json:"boxNumber"`
	FishType   string        `json:"fishType"`
	Weight     float64       `json:"weight"`
	Grade      FishGrade     `json:"grade"`
	SupplierID string        `json:"supplierId,omitempty"`
	CustomerID string        `json:"customerId,omitempty"`
	Status     FishBoxStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// Received reports whether the box is on the received side of the
// ledger. In-stock boxes have been received and not yet dispatched, so
// the received view includes them.
func (b *FishBox) Received() bool {
	return b.Status == BoxReceived || b.Status == BoxInStock
}

// CreateFishBoxRequest represents the request body for registering a
// received box. Date is "2006-01-02"; empty means today.
type CreateFishBoxRequest struct {
	BoxNumber  string    `json:"boxNumber"`
	FishType   string    `json:"fishType"`
	Weight     float64   `json:"weight"`
	Grade      FishGrade `json:"grade"`
	SupplierID string    `json:"supplierId"`
	Date       string    `json:"date"`
}

// UpdateFishBoxRequest is a partial update; nil fields are left unchanged.
type UpdateFishBoxRequest struct {
	BoxNumber  *string        `json:"boxNumber"`
	FishType   *string        `json:"fishType"`
	Weight     *float64       `json:"weight"`
	Grade      *FishGrade     `json:"grade"`
	SupplierID *string        `json:"supplierId"`
	CustomerID *string        `json:"customerId"`
	Status     *FishBoxStatus `json:"status"`
	Date       *string        `json:"date"`
}
