package application_test

import (
	"context"
	"fmt"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/domain"
)

// fakeRepo is an in-memory HotelRepository over a single hotel document. It
// mimics the store's contract: fetches return independent copies, saves
// replace whole sections, and identifiers are assigned during the save.
//
// Setting fetchOverride makes FindByID return a stale snapshot, which lets a
// test emulate "fetched before the concurrent save landed" deterministically.
type fakeRepo struct {
	hotel         *domain.Hotel
	fetchOverride *domain.Hotel
	nextID        int

	findErr   error
	saveErr   error
	createErr error

	lastFindFields []string
	lastSections   []string
	lastGeoOpts    application.GeoOptions
	lastSkip       int64
	lastLimit      int64
	saveCount      int
}

func cloneHotel(h domain.Hotel) domain.Hotel {
	clone := h
	clone.Services = append([]string{}, h.Services...)
	clone.Photos = append([]string{}, h.Photos...)
	clone.Location.Coordinates = append([]float64{}, h.Location.Coordinates...)
	clone.Reviews = append([]domain.Review{}, h.Reviews...)
	return clone
}

func (f *fakeRepo) Find(ctx context.Context, skip, limit int64) ([]domain.Hotel, error) {
	f.lastSkip, f.lastLimit = skip, limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.hotel == nil {
		return []domain.Hotel{}, nil
	}
	return []domain.Hotel{cloneHotel(*f.hotel)}, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string, fields ...string) (*domain.Hotel, error) {
	f.lastFindFields = fields
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.fetchOverride != nil {
		clone := cloneHotel(*f.fetchOverride)
		return &clone, nil
	}
	if f.hotel == nil || f.hotel.ID != id {
		return nil, domain.ErrHotelNotFound
	}
	clone := cloneHotel(*f.hotel)
	return &clone, nil
}

func (f *fakeRepo) GeoNear(ctx context.Context, lng, lat float64, opts application.GeoOptions) ([]domain.GeoResult, error) {
	f.lastGeoOpts = opts
	return []domain.GeoResult{}, nil
}

func (f *fakeRepo) Create(ctx context.Context, hotel *domain.Hotel) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	hotel.ID = fmt.Sprintf("hotel%04d", f.nextID)
	clone := cloneHotel(*hotel)
	f.hotel = &clone
	return nil
}

func (f *fakeRepo) Save(ctx context.Context, hotel *domain.Hotel, sections ...string) error {
	f.lastSections = sections
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range hotel.Reviews {
		if hotel.Reviews[i].ID == "" {
			f.nextID++
			hotel.Reviews[i].ID = fmt.Sprintf("review%04d", f.nextID)
		}
	}
	clone := cloneHotel(*hotel)
	f.hotel = &clone
	f.saveCount++
	return nil
}

func (f *fakeRepo) FindByIDAndRemove(ctx context.Context, id string) (*domain.Hotel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.hotel == nil || f.hotel.ID != id {
		return nil, domain.ErrHotelNotFound
	}
	removed := cloneHotel(*f.hotel)
	f.hotel = nil
	return &removed, nil
}
