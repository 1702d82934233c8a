package hotels

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dguiney/hotel-api/internal/domain"
	"github.com/dguiney/hotel-api/internal/interfaces/http/common"
)

const (
	defaultOffset = 0
	defaultCount  = 19
	maxCount      = 20

	requestTimeout = 5 * time.Second
)

// hotelListHandler serves the hotel collection. When both lat and lng are
// supplied the request switches to a nearest-neighbor search and the
// offset/count pagination parameters are ignored.
func (h *Handler) hotelListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		query := r.URL.Query()
		if query.Get("lat") != "" && query.Get("lng") != "" {
			h.runGeoQuery(ctx, w, query.Get("lng"), query.Get("lat"))
			return
		}

		offset, offsetErr := common.ParseIntParam(query.Get("offset"), defaultOffset)
		count, countErr := common.ParseIntParam(query.Get("count"), defaultCount)
		if offsetErr != nil || countErr != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: msgBadPagination})
			return
		}
		if count > maxCount {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: msgCountExceeded})
			return
		}

		hotels, err := h.hotelQueries.List(ctx, offset, count)
		if err != nil {
			h.logger.Error().Err(err).Msg("hotel list fetch failed")
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, common.StoreError{Error: err.Error()})
			return
		}

		items := make([]hotelResponse, 0, len(hotels))
		for _, hotel := range hotels {
			items = append(items, buildHotelResponse(hotel))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) runGeoQuery(ctx context.Context, w http.ResponseWriter, lngParam, latParam string) {
	lng, lngErr := common.ParseFloatParam(lngParam)
	lat, latErr := common.ParseFloatParam(latParam)
	if lngErr != nil || latErr != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: msgBadGeoParams})
		return
	}

	results, err := h.hotelQueries.Nearest(ctx, lng, lat)
	if err != nil {
		h.logger.Error().Err(err).Float64("lng", lng).Float64("lat", lat).Msg("geo search failed")
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, common.StoreError{Error: err.Error()})
		return
	}

	items := make([]geoResultResponse, 0, len(results))
	for _, result := range results {
		items = append(items, geoResultResponse{
			Distance: result.Distance,
			Hotel:    buildHotelResponse(result.Hotel),
		})
	}
	common.WriteJSON(h.logger, w, http.StatusOK, items)
}

func (h *Handler) hotelDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		hotel, err := h.hotelQueries.Detail(ctx, hotelID)
		if err != nil {
			if errors.Is(err, domain.ErrHotelNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, common.Message{Message: msgHotelNotFound})
				return
			}
			h.logger.Error().Err(err).Str("hotelId", hotelID).Msg("hotel detail fetch failed")
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, common.StoreError{Error: err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildHotelResponse(*hotel))
	}
}

func (h *Handler) hotelCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		payload, err := bindHotelPayload(r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}
		fields, err := payload.fields()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}

		hotel, err := h.hotelCommands.Create(ctx, fields)
		if err != nil {
			// Store rejections on create map to 400 whatever their cause,
			// matching the legacy contract.
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.StoreError{Error: err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildHotelResponse(*hotel))
	}
}

// hotelUpdateHandler replaces every mutable field from the request body.
// Fields the caller omits are cleared, not merged.
func (h *Handler) hotelUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		payload, err := bindHotelPayload(r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}
		fields, err := payload.fields()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}

		if err := h.hotelCommands.Replace(ctx, hotelID, fields); err != nil {
			if errors.Is(err, domain.ErrHotelNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, common.Message{Message: msgHotelNotFound})
				return
			}
			h.logger.Error().Err(err).Str("hotelId", hotelID).Msg("hotel update failed")
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, common.StoreError{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// hotelDeleteHandler reports 404 for any failure of the find-and-remove,
// store errors included. The legacy API never distinguished the two.
func (h *Handler) hotelDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		if err := h.hotelCommands.Remove(ctx, hotelID); err != nil {
			if errors.Is(err, domain.ErrHotelNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, common.Message{Message: msgHotelNotFound})
				return
			}
			h.logger.Error().Err(err).Str("hotelId", hotelID).Msg("hotel delete failed")
			common.WriteJSON(h.logger, w, http.StatusNotFound, common.StoreError{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
