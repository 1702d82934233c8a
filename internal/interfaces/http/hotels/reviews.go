package hotels

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dguiney/hotel-api/internal/domain"
	"github.com/dguiney/hotel-api/internal/interfaces/http/common"
)

// writeReviewError maps the shared failure modes of every review operation:
// the parent hotel and the review have distinct not-found messages at the
// same status code, and anything else surfaces as a store failure.
func (h *Handler) writeReviewError(w http.ResponseWriter, err error, hotelID, reviewID string) {
	switch {
	case errors.Is(err, domain.ErrHotelNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, common.Message{Message: msgHotelNotFound})
	case errors.Is(err, domain.ErrReviewNotFound):
		common.WriteJSON(h.logger, w, http.StatusNotFound, common.Message{Message: msgReviewNotFound})
	default:
		h.logger.Error().Err(err).Str("hotelId", hotelID).Str("reviewId", reviewID).Msg("review operation failed")
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, common.StoreError{Error: err.Error()})
	}
}

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		reviews, err := h.reviews.List(ctx, hotelID)
		if err != nil {
			h.writeReviewError(w, err, hotelID, "")
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, buildReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) reviewDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		reviewID := strings.TrimSpace(chi.URLParam(r, "reviewId"))
		review, err := h.reviews.Detail(ctx, hotelID, reviewID)
		if err != nil {
			h.writeReviewError(w, err, hotelID, reviewID)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewResponse(*review))
	}
}

// reviewCreateHandler appends a review to the parent hotel and responds with
// just the newly appended entry, including its store-assigned identifier.
func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		payload, err := bindReviewPayload(r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}
		fields, err := payload.fields()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}

		review, err := h.reviews.Add(ctx, hotelID, fields)
		if err != nil {
			h.writeReviewError(w, err, hotelID, "")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review))
	}
}

func (h *Handler) reviewUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		reviewID := strings.TrimSpace(chi.URLParam(r, "reviewId"))
		payload, err := bindReviewPayload(r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}
		fields, err := payload.fields()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, common.Message{Message: err.Error()})
			return
		}

		if err := h.reviews.Replace(ctx, hotelID, reviewID, fields); err != nil {
			h.writeReviewError(w, err, hotelID, reviewID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) reviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		hotelID := strings.TrimSpace(chi.URLParam(r, "hotelId"))
		reviewID := strings.TrimSpace(chi.URLParam(r, "reviewId"))
		if err := h.reviews.Remove(ctx, hotelID, reviewID); err != nil {
			h.writeReviewError(w, err, hotelID, reviewID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
