package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dguiney/hotel-api/internal/domain"
)

// LocationDocument is the embedded location schema. Coordinates is a
// [longitude, latitude] pair indexed with 2dsphere.
type LocationDocument struct {
	Address     string    `bson:"address,omitempty"`
	Coordinates []float64 `bson:"coordinates,omitempty" validate:"omitempty,len=2"`
}

// ReviewDocument is one element of the hotel's embedded review collection.
// The validate tags stand in for the schema the store would otherwise enforce.
type ReviewDocument struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name" validate:"required"`
	Rating int                `bson:"rating" validate:"min=0,max=5"`
	Review string             `bson:"review,omitempty"`
}

// HotelDocument is the hotel schema as stored in MongoDB.
type HotelDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" validate:"required"`
	Description string             `bson:"description,omitempty"`
	Stars       int                `bson:"stars,omitempty" validate:"min=0,max=5"`
	Services    []string           `bson:"services"`
	Photos      []string           `bson:"photos"`
	Currency    string             `bson:"currency,omitempty"`
	Location    LocationDocument   `bson:"location,omitempty"`
	Reviews     []ReviewDocument   `bson:"reviews,omitempty"`
}

func mapHotelDocument(doc HotelDocument) domain.Hotel {
	reviews := make([]domain.Review, 0, len(doc.Reviews))
	for _, review := range doc.Reviews {
		reviews = append(reviews, mapReviewDocument(review))
	}

	return domain.Hotel{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Stars:       doc.Stars,
		Services:    append([]string{}, doc.Services...),
		Photos:      append([]string{}, doc.Photos...),
		Currency:    doc.Currency,
		Location: domain.Location{
			Address:     doc.Location.Address,
			Coordinates: append([]float64{}, doc.Location.Coordinates...),
		},
		Reviews: reviews,
	}
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:     doc.ID.Hex(),
		Name:   doc.Name,
		Rating: doc.Rating,
		Review: doc.Review,
	}
}

func newLocationDocument(location domain.Location) LocationDocument {
	return LocationDocument{
		Address:     location.Address,
		Coordinates: append([]float64{}, location.Coordinates...),
	}
}
