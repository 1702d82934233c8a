package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/domain"
	"github.com/dguiney/hotel-api/internal/infrastructure/observability"
)

func observeStore(operation string, err error) {
	switch {
	case err == nil:
		observability.ObserveStore(operation, "ok")
	case errors.Is(err, domain.ErrHotelNotFound), errors.Is(err, domain.ErrReviewNotFound):
		observability.ObserveStore(operation, "not_found")
	default:
		observability.ObserveStore(operation, "error")
	}
}

// HotelRepository implements application.HotelRepository on a MongoDB
// collection. Documents are validated before every write, standing in for the
// schema enforcement the legacy store provided.
type HotelRepository struct {
	collection *mongo.Collection
	validate   *validator.Validate
}

// NewHotelRepository creates a Mongo-backed hotel repository.
func NewHotelRepository(db *mongo.Database, collectionName string) *HotelRepository {
	return &HotelRepository{
		collection: db.Collection(collectionName),
		validate:   validator.New(),
	}
}

// EnsureIndexes creates the 2dsphere index the nearest-neighbor search needs.
func (r *HotelRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
	})
	return err
}

// Find returns a skip/limit page of hotels in the store's natural order.
func (r *HotelRepository) Find(ctx context.Context, skip, limit int64) (hotels []domain.Hotel, err error) {
	defer func() { observeStore("find", err) }()

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	hotels = make([]domain.Hotel, 0)
	for cursor.Next(ctx) {
		var doc HotelDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		hotels = append(hotels, mapHotelDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return hotels, nil
}

// FindByID returns a single hotel, optionally projected. A field selector of
// "reviews" loads only that field, "-reviews" loads everything but it.
func (r *HotelRepository) FindByID(ctx context.Context, id string, fields ...string) (hotel *domain.Hotel, err error) {
	defer func() { observeStore("find_by_id", err) }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	opts := options.FindOne()
	if projection := buildProjection(fields); projection != nil {
		opts.SetProjection(projection)
	}

	var doc HotelDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, err
	}
	mapped := mapHotelDocument(doc)
	return &mapped, nil
}

type geoNearDocument struct {
	HotelDocument `bson:",inline"`
	Distance      float64 `bson:"distance"`
}

// GeoNear runs a spherical nearest-neighbor search centred at (lng, lat),
// returning at most opts.Limit hotels within opts.MaxDistance metres,
// nearest first.
func (r *HotelRepository) GeoNear(ctx context.Context, lng, lat float64, opts application.GeoOptions) (results []domain.GeoResult, err error) {
	defer func() { observeStore("geo_near", err) }()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lng, lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: opts.MaxDistance},
			{Key: "spherical", Value: true},
			{Key: "key", Value: "location.coordinates"},
		}}},
		bson.D{{Key: "$limit", Value: opts.Limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results = make([]domain.GeoResult, 0, opts.Limit)
	for cursor.Next(ctx) {
		var doc geoNearDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, domain.GeoResult{
			Distance: doc.Distance,
			Hotel:    mapHotelDocument(doc.HotelDocument),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Create validates and inserts a new hotel, assigning its identifier.
func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) (err error) {
	defer func() { observeStore("create", err) }()

	doc := HotelDocument{
		ID:          primitive.NewObjectID(),
		Name:        hotel.Name,
		Description: hotel.Description,
		Stars:       hotel.Stars,
		Services:    hotel.Services,
		Photos:      hotel.Photos,
		Currency:    hotel.Currency,
		Location:    newLocationDocument(hotel.Location),
	}
	if err := r.validate.Struct(doc); err != nil {
		return &domain.ValidationError{Err: err}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	hotel.ID = doc.ID.Hex()
	return nil
}

// Save persists the named sections of an already-loaded hotel back to its
// document. Writes are last-writer-wins per section: a concurrent save of the
// same section silently overwrites this one, or vice versa.
func (r *HotelRepository) Save(ctx context.Context, hotel *domain.Hotel, sections ...string) (err error) {
	defer func() { observeStore("save", err) }()

	objectID, err := primitive.ObjectIDFromHex(hotel.ID)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	set := bson.M{}
	unset := bson.M{}
	for _, section := range sections {
		switch section {
		case application.SectionFields:
			if err := r.setHotelFields(hotel, set, unset); err != nil {
				return err
			}
		case application.SectionReviews:
			if err := r.setReviews(hotel, set); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown save section %q", section)
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

// setHotelFields stages the full overwrite of every mutable scalar field.
// Empty values are unset so an omitted input clears the stored field.
func (r *HotelRepository) setHotelFields(hotel *domain.Hotel, set, unset bson.M) error {
	doc := HotelDocument{
		Name:        hotel.Name,
		Description: hotel.Description,
		Stars:       hotel.Stars,
		Location:    newLocationDocument(hotel.Location),
	}
	if err := r.validate.StructPartial(doc, "Name", "Stars", "Location.Coordinates"); err != nil {
		return &domain.ValidationError{Err: err}
	}

	set["name"] = hotel.Name
	set["stars"] = hotel.Stars
	set["services"] = hotel.Services
	set["photos"] = hotel.Photos
	set["location"] = doc.Location
	setOrUnset(set, unset, "description", hotel.Description)
	setOrUnset(set, unset, "currency", hotel.Currency)
	return nil
}

// setReviews stages the whole embedded collection, assigning identifiers to
// reviews that were appended since the load.
func (r *HotelRepository) setReviews(hotel *domain.Hotel, set bson.M) error {
	docs := make([]ReviewDocument, 0, len(hotel.Reviews))
	for i := range hotel.Reviews {
		review := &hotel.Reviews[i]
		doc := ReviewDocument{
			Name:   review.Name,
			Rating: review.Rating,
			Review: review.Review,
		}
		if review.ID == "" {
			doc.ID = primitive.NewObjectID()
			review.ID = doc.ID.Hex()
		} else {
			objectID, err := primitive.ObjectIDFromHex(review.ID)
			if err != nil {
				return domain.ErrReviewNotFound
			}
			doc.ID = objectID
		}
		if err := r.validate.Struct(doc); err != nil {
			return &domain.ValidationError{Err: err}
		}
		docs = append(docs, doc)
	}
	set["reviews"] = docs
	return nil
}

// FindByIDAndRemove deletes a hotel and its embedded reviews in one store
// operation, returning the removed document.
func (r *HotelRepository) FindByIDAndRemove(ctx context.Context, id string) (hotel *domain.Hotel, err error) {
	defer func() { observeStore("find_by_id_and_remove", err) }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	var doc HotelDocument
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, err
	}
	mapped := mapHotelDocument(doc)
	return &mapped, nil
}

func setOrUnset(set, unset bson.M, key, value string) {
	if strings.TrimSpace(value) == "" {
		unset[key] = ""
		return
	}
	set[key] = value
}

func buildProjection(fields []string) bson.D {
	if len(fields) == 0 {
		return nil
	}
	projection := bson.D{}
	for _, field := range fields {
		if name := strings.TrimPrefix(field, "-"); name != field {
			projection = append(projection, bson.E{Key: name, Value: 0})
		} else {
			projection = append(projection, bson.E{Key: name, Value: 1})
		}
	}
	return projection
}
