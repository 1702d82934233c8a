package application

import (
	"context"

	"github.com/dguiney/hotel-api/internal/domain"
)

// Geo searches are capped at 2000 metres and 5 results, nearest first.
const (
	geoMaxDistanceMetres = 2000
	geoResultLimit       = 5
)

// NewHotelQueryService returns the read side over the hotel collection.
func NewHotelQueryService(repo HotelRepository) HotelQueryService {
	return &hotelQueryService{repo: repo}
}

type hotelQueryService struct {
	repo HotelRepository
}

func (s *hotelQueryService) List(ctx context.Context, skip, limit int64) ([]domain.Hotel, error) {
	return s.repo.Find(ctx, skip, limit)
}

func (s *hotelQueryService) Nearest(ctx context.Context, lng, lat float64) ([]domain.GeoResult, error) {
	return s.repo.GeoNear(ctx, lng, lat, GeoOptions{
		MaxDistance: geoMaxDistanceMetres,
		Limit:       geoResultLimit,
	})
}

func (s *hotelQueryService) Detail(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.repo.FindByID(ctx, id)
}

// NewHotelCommandService returns the write side over the hotel collection.
func NewHotelCommandService(repo HotelRepository) HotelCommandService {
	return &hotelCommandService{repo: repo}
}

type hotelCommandService struct {
	repo HotelRepository
}

func (s *hotelCommandService) Create(ctx context.Context, fields HotelFields) (*domain.Hotel, error) {
	hotel := &domain.Hotel{}
	applyHotelFields(hotel, fields)
	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Replace loads the hotel without its reviews and rooms, overwrites every
// mutable field and persists the result. Fields absent from the request are
// cleared, not kept.
func (s *hotelCommandService) Replace(ctx context.Context, id string, fields HotelFields) error {
	hotel, err := s.repo.FindByID(ctx, id, "-reviews", "-rooms")
	if err != nil {
		return err
	}
	applyHotelFields(hotel, fields)
	return s.repo.Save(ctx, hotel, SectionFields)
}

func (s *hotelCommandService) Remove(ctx context.Context, id string) error {
	_, err := s.repo.FindByIDAndRemove(ctx, id)
	return err
}

func applyHotelFields(hotel *domain.Hotel, fields HotelFields) {
	hotel.Name = fields.Name
	hotel.Description = fields.Description
	hotel.Stars = fields.Stars
	hotel.Services = fields.Services
	hotel.Photos = fields.Photos
	hotel.Currency = fields.Currency
	hotel.Location = domain.Location{
		Address:     fields.Address,
		Coordinates: []float64{fields.Lng, fields.Lat},
	}
}
