package application

import (
	"context"

	"github.com/dguiney/hotel-api/internal/domain"
)

// Sections a loaded hotel can be persisted with. Save writes only the named
// sections back to the store; last writer wins per section.
const (
	SectionFields  = "fields"
	SectionReviews = "reviews"
)

// GeoOptions bounds a nearest-neighbor search.
type GeoOptions struct {
	MaxDistance float64
	Limit       int
}

// HotelRepository abstracts the document store.
// FindByID accepts Mongoose-style field selectors: "reviews" loads only that
// field, "-reviews" loads everything but it.
type HotelRepository interface {
	Find(ctx context.Context, skip, limit int64) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id string, fields ...string) (*domain.Hotel, error)
	GeoNear(ctx context.Context, lng, lat float64, opts GeoOptions) ([]domain.GeoResult, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Save(ctx context.Context, hotel *domain.Hotel, sections ...string) error
	FindByIDAndRemove(ctx context.Context, id string) (*domain.Hotel, error)
}

// HotelFields carries the coerced mutable fields of a hotel. Every update
// overwrites all of them; omitted inputs clear the stored value.
type HotelFields struct {
	Name        string
	Description string
	Stars       int
	Services    []string
	Photos      []string
	Currency    string
	Address     string
	Lng         float64
	Lat         float64
}

// ReviewFields carries the coerced mutable fields of a review.
type ReviewFields struct {
	Name   string
	Rating int
	Review string
}

// HotelQueryService provides the read use-cases over hotels.
type HotelQueryService interface {
	List(ctx context.Context, skip, limit int64) ([]domain.Hotel, error)
	Nearest(ctx context.Context, lng, lat float64) ([]domain.GeoResult, error)
	Detail(ctx context.Context, id string) (*domain.Hotel, error)
}

// HotelCommandService provides the write use-cases over hotels.
type HotelCommandService interface {
	Create(ctx context.Context, fields HotelFields) (*domain.Hotel, error)
	Replace(ctx context.Context, id string, fields HotelFields) error
	Remove(ctx context.Context, id string) error
}

// ReviewService provides every use-case over the embedded review collection.
// All operations address reviews through their parent hotel.
type ReviewService interface {
	List(ctx context.Context, hotelID string) ([]domain.Review, error)
	Detail(ctx context.Context, hotelID, reviewID string) (*domain.Review, error)
	Add(ctx context.Context, hotelID string, fields ReviewFields) (*domain.Review, error)
	Replace(ctx context.Context, hotelID, reviewID string, fields ReviewFields) error
	Remove(ctx context.Context, hotelID, reviewID string) error
}
