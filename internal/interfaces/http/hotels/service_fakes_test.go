package hotels_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/domain"
	"github.com/dguiney/hotel-api/internal/interfaces/http/hotels"
)

type fakeHotelQueries struct {
	hotels  []domain.Hotel
	listErr error
	geo     []domain.GeoResult
	geoErr  error
	detail  *domain.Hotel
	detErr  error

	listCalled bool
	geoCalled  bool
	lastSkip   int64
	lastLimit  int64
	lastLng    float64
	lastLat    float64
	lastID     string
}

func (f *fakeHotelQueries) List(ctx context.Context, skip, limit int64) ([]domain.Hotel, error) {
	f.listCalled = true
	f.lastSkip, f.lastLimit = skip, limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.hotels, nil
}

func (f *fakeHotelQueries) Nearest(ctx context.Context, lng, lat float64) ([]domain.GeoResult, error) {
	f.geoCalled = true
	f.lastLng, f.lastLat = lng, lat
	if f.geoErr != nil {
		return nil, f.geoErr
	}
	return f.geo, nil
}

func (f *fakeHotelQueries) Detail(ctx context.Context, id string) (*domain.Hotel, error) {
	f.lastID = id
	if f.detErr != nil {
		return nil, f.detErr
	}
	return f.detail, nil
}

type fakeHotelCommands struct {
	created    *domain.Hotel
	createErr  error
	replaceErr error
	removeErr  error

	lastCreateFields  application.HotelFields
	lastReplaceID     string
	lastReplaceFields application.HotelFields
	lastRemoveID      string
}

func (f *fakeHotelCommands) Create(ctx context.Context, fields application.HotelFields) (*domain.Hotel, error) {
	f.lastCreateFields = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeHotelCommands) Replace(ctx context.Context, id string, fields application.HotelFields) error {
	f.lastReplaceID, f.lastReplaceFields = id, fields
	return f.replaceErr
}

func (f *fakeHotelCommands) Remove(ctx context.Context, id string) error {
	f.lastRemoveID = id
	return f.removeErr
}

type fakeReviews struct {
	reviews []domain.Review
	listErr error
	detail  *domain.Review
	detErr  error
	added   *domain.Review
	addErr  error

	replaceErr error
	removeErr  error

	lastHotelID   string
	lastReviewID  string
	lastAddFields application.ReviewFields
	lastFields    application.ReviewFields
}

func (f *fakeReviews) List(ctx context.Context, hotelID string) ([]domain.Review, error) {
	f.lastHotelID = hotelID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reviews, nil
}

func (f *fakeReviews) Detail(ctx context.Context, hotelID, reviewID string) (*domain.Review, error) {
	f.lastHotelID, f.lastReviewID = hotelID, reviewID
	if f.detErr != nil {
		return nil, f.detErr
	}
	return f.detail, nil
}

func (f *fakeReviews) Add(ctx context.Context, hotelID string, fields application.ReviewFields) (*domain.Review, error) {
	f.lastHotelID, f.lastAddFields = hotelID, fields
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.added, nil
}

func (f *fakeReviews) Replace(ctx context.Context, hotelID, reviewID string, fields application.ReviewFields) error {
	f.lastHotelID, f.lastReviewID, f.lastFields = hotelID, reviewID, fields
	return f.replaceErr
}

func (f *fakeReviews) Remove(ctx context.Context, hotelID, reviewID string) error {
	f.lastHotelID, f.lastReviewID = hotelID, reviewID
	return f.removeErr
}

func newTestRouter(queries *fakeHotelQueries, commands *fakeHotelCommands, reviews *fakeReviews) http.Handler {
	handler := hotels.NewHandler(hotels.Config{
		Logger:        zerolog.Nop(),
		HotelQueries:  queries,
		HotelCommands: commands,
		Reviews:       reviews,
	})
	router := chi.NewRouter()
	router.Route("/api", handler.Register)
	return router
}
