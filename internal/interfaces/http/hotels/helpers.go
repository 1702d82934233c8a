package hotels

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dguiney/hotel-api/internal/application"
)

const (
	msgHotelNotFound  = "Hotel ID not found"
	msgReviewNotFound = "Review ID not found"

	msgBadPagination = "if supplied in the query string, count and offset should be integer values"
	msgCountExceeded = "if supplied in the query string, count cannot exceed 20"
	msgBadGeoParams  = "if supplied in the query string, lng and lat should be float values"
)

var (
	errBadStars  = errors.New("stars should be an integer value between 0 and 5")
	errBadCoords = errors.New("lng and lat should be float values")
	errBadRating = errors.New("rating should be an integer value")
)

// splitList turns a `;`-delimited input into a list. An empty input becomes
// an empty list, never a single-element list holding the original string.
func splitList(input string) []string {
	if input == "" {
		return []string{}
	}
	return strings.Split(input, ";")
}

func (p hotelPayload) fields() (application.HotelFields, error) {
	stars, err := strconv.Atoi(string(p.Stars))
	if err != nil {
		return application.HotelFields{}, errBadStars
	}
	lng, err := strconv.ParseFloat(string(p.Lng), 64)
	if err != nil {
		return application.HotelFields{}, errBadCoords
	}
	lat, err := strconv.ParseFloat(string(p.Lat), 64)
	if err != nil {
		return application.HotelFields{}, errBadCoords
	}

	return application.HotelFields{
		Name:        p.Name,
		Description: p.Description,
		Stars:       stars,
		Services:    splitList(p.Services),
		Photos:      splitList(p.Photos),
		Currency:    p.Currency,
		Address:     p.Address,
		Lng:         lng,
		Lat:         lat,
	}, nil
}

func (p reviewPayload) fields() (application.ReviewFields, error) {
	rating, err := strconv.Atoi(string(p.Rating))
	if err != nil {
		return application.ReviewFields{}, errBadRating
	}

	return application.ReviewFields{
		Name:   p.Name,
		Rating: rating,
		Review: p.Review,
	}, nil
}
