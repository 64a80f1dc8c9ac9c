package services

import (
	"context"
	"errors"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
	"aqua-backend/internal/timeutil"
)

var ErrBoxAlreadySent = errors.New("fish box has already been sent")

// FishBoxService tracks physical box lots from receipt through
// dispatch. A sent box is terminal: it cannot be shipped again or
// moved back to received.
type FishBoxService struct {
	Store *store.Store
	Now   func() time.Time
}

func NewFishBoxService(s *store.Store) *FishBoxService {
	return &FishBoxService{Store: s, Now: time.Now}
}

func (f *FishBoxService) Create(ctx context.Context, req models.CreateFishBoxRequest) (*models.FishBox, error) {
	if req.BoxNumber == "" {
		return nil, errors.New("box number is required")
	}
	if req.FishType == "" {
		return nil, errors.New("fish type is required")
	}
	if req.Weight <= 0 {
		return nil, errors.New("weight must be greater than zero")
	}
	if req.Grade != models.GradeA && req.Grade != models.GradeB && req.Grade != models.GradeC {
		return nil, errors.New("grade must be A, B or C")
	}

	date := f.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, req.Date, time.Local)
		if err != nil {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	box := models.FishBox{
		BoxNumber:  req.BoxNumber,
		FishType:   req.FishType,
		Weight:     req.Weight,
		Grade:      req.Grade,
		SupplierID: req.SupplierID,
		Status:     models.BoxReceived,
		Date:       date,
	}
	return f.Store.AddFishBox(ctx, box), nil
}

func (f *FishBoxService) Get(ctx context.Context, id string) *models.FishBox {
	return f.Store.GetFishBox(id)
}

// List filters boxes by status. Filtering by received returns the
// received view, which includes in-stock boxes: they have been
// received and not yet dispatched.
func (f *FishBoxService) List(ctx context.Context, status models.FishBoxStatus) []models.FishBox {
	boxes := f.Store.FishBoxes()
	if status == "" {
		return boxes
	}
	out := []models.FishBox{}
	for _, b := range boxes {
		if b.Status == status || (status == models.BoxReceived && b.Received()) {
			out = append(out, b)
		}
	}
	return out
}

// Update applies a partial update. Status changes away from sent are
// rejected; a sent box is a completed dispatch record.
func (f *FishBoxService) Update(ctx context.Context, id string, req models.UpdateFishBoxRequest) (*models.FishBox, error) {
	existing := f.Store.GetFishBox(id)
	if existing == nil {
		return nil, nil
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, errors.New("invalid fish box status")
		}
		if existing.Status == models.BoxSent && *req.Status != models.BoxSent {
			return nil, ErrBoxAlreadySent
		}
	}
	var date *time.Time
	if req.Date != nil {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, *req.Date, time.Local)
		if err != nil {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		date = &parsed
	}

	return f.Store.UpdateFishBox(ctx, id, func(b *models.FishBox) {
		if req.BoxNumber != nil {
			b.BoxNumber = *req.BoxNumber
		}
		if req.FishType != nil {
			b.FishType = *req.FishType
		}
		if req.Weight != nil {
			b.Weight = *req.Weight
		}
		if req.Grade != nil {
			b.Grade = *req.Grade
		}
		if req.SupplierID != nil {
			b.SupplierID = *req.SupplierID
		}
		if req.CustomerID != nil {
			b.CustomerID = *req.CustomerID
		}
		if req.Status != nil {
			b.Status = *req.Status
		}
		if date != nil {
			b.Date = *date
		}
	}), nil
}

// Ship marks a box as sent to the given customer, stamping today's
// date. Shipping a sent box fails with ErrBoxAlreadySent.
func (f *FishBoxService) Ship(ctx context.Context, id, customerID string) (*models.FishBox, error) {
	if customerID == "" {
		return nil, errors.New("customer id is required")
	}
	existing := f.Store.GetFishBox(id)
	if existing == nil {
		return nil, nil
	}
	if existing.Status == models.BoxSent {
		return nil, ErrBoxAlreadySent
	}
	now := f.Now()
	return f.Store.UpdateFishBox(ctx, id, func(b *models.FishBox) {
		b.CustomerID = customerID
		b.Status = models.BoxSent
		b.Date = now
	}), nil
}

func (f *FishBoxService) Delete(ctx context.Context, id string) bool {
	return f.Store.DeleteFishBox(ctx, id)
}

// FishBoxStats is the box-tracking overview: counts per status, total
// tracked weight, grade distribution and today's movements.
type FishBoxStats struct {
	Total         int                      `json:"total"`
	Received      int                      `json:"received"`
	Sent          int                      `json:"sent"`
	InStock       int                      `json:"inStock"`
	TotalWeight   float64                  `json:"totalWeight"`
	ByGrade       map[models.FishGrade]int `json:"byGrade"`
	ReceivedToday int                      `json:"receivedToday"`
	SentToday     int                      `json:"sentToday"`
}

func (f *FishBoxService) Stats(ctx context.Context) *FishBoxStats {
	now := f.Now()
	stats := &FishBoxStats{ByGrade: map[models.FishGrade]int{}}
	for _, b := range f.Store.FishBoxes() {
		stats.Total++
		stats.TotalWeight += b.Weight
		stats.ByGrade[b.Grade]++
		switch b.Status {
		case models.BoxReceived:
			stats.Received++
		case models.BoxSent:
			stats.Sent++
			if timeutil.SameDay(b.Date, now) {
				stats.SentToday++
			}
		case models.BoxInStock:
			stats.InStock++
		}
		if b.Received() && timeutil.SameDay(b.Date, now) {
			stats.ReceivedToday++
		}
	}
	return stats
}
