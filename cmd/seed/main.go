// Command seed populates the hotel collection with sample documents so the
// API (including the geo search) can be exercised locally. It goes through
// the repository, so schema validation and index bootstrap run exactly as
// they do in the server.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/config"
	"github.com/dguiney/hotel-api/internal/domain"
	mongodoc "github.com/dguiney/hotel-api/internal/infrastructure/mongo"
	"github.com/dguiney/hotel-api/internal/infrastructure/observability"
)

type seedReview struct {
	name   string
	rating int
	review string
}

type seedHotel struct {
	hotel   domain.Hotel
	reviews []seedReview
}

var samples = []seedHotel{
	{
		hotel: domain.Hotel{
			Name:        "The Grange",
			Description: "Victorian townhouse a short walk from the waterfront.",
			Stars:       4,
			Services:    []string{"wifi", "breakfast", "parking"},
			Photos:      []string{"grange-front.jpg", "grange-lobby.jpg"},
			Currency:    "GBP",
			Location: domain.Location{
				Address:     "97 Duke St, Reading",
				Coordinates: []float64{-0.9690884, 51.455041},
			},
		},
		reviews: []seedReview{
			{name: "Simon Holmes", rating: 5, review: "Great location, friendly staff."},
			{name: "Charlie Chaplin", rating: 3, review: "Decent stay, thin walls."},
		},
	},
	{
		hotel: domain.Hotel{
			Name:        "Harbour View",
			Description: "Family-run guesthouse overlooking the marina.",
			Stars:       3,
			Services:    []string{"wifi", "bar"},
			Photos:      []string{"harbour-view.jpg"},
			Currency:    "GBP",
			Location: domain.Location{
				Address:     "3 Quayside, Reading",
				Coordinates: []float64{-0.9720, 51.4560},
			},
		},
		reviews: []seedReview{
			{name: "Ana Costa", rating: 4, review: "Lovely breakfast, would return."},
		},
	},
	{
		hotel: domain.Hotel{
			Name:     "Station Budget Rooms",
			Stars:    2,
			Services: []string{},
			Photos:   []string{},
			Currency: "GBP",
			Location: domain.Location{
				Address:     "1 Station Rd, Reading",
				Coordinates: []float64{-0.9731, 51.4586},
			},
		},
	},
}

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	repo := mongodoc.NewHotelRepository(client.Database(cfg.MongoDatabase), cfg.HotelCollection)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSeed()

	if err := repo.EnsureIndexes(seedCtx); err != nil {
		logger.Fatal().Err(err).Msg("index bootstrap failed")
	}

	for _, sample := range samples {
		hotel := sample.hotel
		if err := repo.Create(seedCtx, &hotel); err != nil {
			logger.Fatal().Err(err).Str("name", hotel.Name).Msg("hotel seed failed")
		}

		if len(sample.reviews) > 0 {
			for _, review := range sample.reviews {
				hotel.Reviews = append(hotel.Reviews, domain.Review{
					Name:   review.name,
					Rating: review.rating,
					Review: review.review,
				})
			}
			if err := repo.Save(seedCtx, &hotel, application.SectionReviews); err != nil {
				logger.Fatal().Err(err).Str("name", hotel.Name).Msg("review seed failed")
			}
		}

		logger.Info().Str("id", hotel.ID).Str("name", hotel.Name).Int("reviews", len(hotel.Reviews)).Msg("seeded hotel")
	}
}
