package hotels

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/dguiney/hotel-api/internal/domain"
)

// formValue accepts both JSON strings and bare JSON numbers. Legacy clients
// submit either, depending on whether they post forms or JSON bodies.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = formValue(data)
	return nil
}

type hotelPayload struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stars       formValue `json:"stars"`
	Services    string    `json:"services"`
	Photos      string    `json:"photos"`
	Currency    string    `json:"currency"`
	Address     string    `json:"address"`
	Lng         formValue `json:"lng"`
	Lat         formValue `json:"lat"`
}

type reviewPayload struct {
	Name   string    `json:"name"`
	Rating formValue `json:"rating"`
	Review string    `json:"review"`
}

func isFormEncoded(r *http.Request) bool {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && contentType == "application/x-www-form-urlencoded"
}

func bindHotelPayload(r *http.Request) (hotelPayload, error) {
	var payload hotelPayload
	if isFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return payload, err
		}
		payload = hotelPayload{
			Name:        r.PostFormValue("name"),
			Description: r.PostFormValue("description"),
			Stars:       formValue(r.PostFormValue("stars")),
			Services:    r.PostFormValue("services"),
			Photos:      r.PostFormValue("photos"),
			Currency:    r.PostFormValue("currency"),
			Address:     r.PostFormValue("address"),
			Lng:         formValue(r.PostFormValue("lng")),
			Lat:         formValue(r.PostFormValue("lat")),
		}
		return payload, nil
	}
	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}

func bindReviewPayload(r *http.Request) (reviewPayload, error) {
	var payload reviewPayload
	if isFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return payload, err
		}
		payload = reviewPayload{
			Name:   r.PostFormValue("name"),
			Rating: formValue(r.PostFormValue("rating")),
			Review: r.PostFormValue("review"),
		}
		return payload, nil
	}
	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}

type locationResponse struct {
	Address     string    `json:"address,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

type reviewResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

type hotelResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Stars       int              `json:"stars"`
	Services    []string         `json:"services"`
	Photos      []string         `json:"photos"`
	Currency    string           `json:"currency,omitempty"`
	Location    locationResponse `json:"location"`
	Reviews     []reviewResponse `json:"reviews"`
}

type geoResultResponse struct {
	Distance float64       `json:"distance"`
	Hotel    hotelResponse `json:"hotel"`
}

func buildReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID:     review.ID,
		Name:   review.Name,
		Rating: review.Rating,
		Review: review.Review,
	}
}

func buildHotelResponse(hotel domain.Hotel) hotelResponse {
	reviews := make([]reviewResponse, 0, len(hotel.Reviews))
	for _, review := range hotel.Reviews {
		reviews = append(reviews, buildReviewResponse(review))
	}

	return hotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Description: hotel.Description,
		Stars:       hotel.Stars,
		Services:    hotel.Services,
		Photos:      hotel.Photos,
		Currency:    hotel.Currency,
		Location: locationResponse{
			Address:     hotel.Location.Address,
			Coordinates: hotel.Location.Coordinates,
		},
		Reviews: reviews,
	}
}
