package hotels

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/dguiney/hotel-api/internal/application"
)

// Handler wires the hotel and review HTTP endpoints to application services.
type Handler struct {
	logger        zerolog.Logger
	hotelQueries  application.HotelQueryService
	hotelCommands application.HotelCommandService
	reviews       application.ReviewService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        zerolog.Logger
	HotelQueries  application.HotelQueryService
	HotelCommands application.HotelCommandService
	Reviews       application.ReviewService
}

// NewHandler constructs the hotel HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		hotelQueries:  cfg.HotelQueries,
		hotelCommands: cfg.HotelCommands,
		reviews:       cfg.Reviews,
	}
}

// Register mounts all hotel and review routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.hotelListHandler())
		r.Post("/", h.hotelCreateHandler())
		r.Route("/{hotelId}", func(r chi.Router) {
			r.Get("/", h.hotelDetailHandler())
			r.Put("/", h.hotelUpdateHandler())
			r.Delete("/", h.hotelDeleteHandler())
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.reviewListHandler())
				r.Post("/", h.reviewCreateHandler())
				r.Get("/{reviewId}", h.reviewDetailHandler())
				r.Put("/{reviewId}", h.reviewUpdateHandler())
				r.Delete("/{reviewId}", h.reviewDeleteHandler())
			})
		})
	})
}
