package application

import (
	"context"

	"github.com/dguiney/hotel-api/internal/domain"
)

// NewReviewService returns the use-cases over embedded review collections.
//
// Every mutation is a fetch-mutate-save pair over the parent document with no
// optimistic check: two concurrent mutations on the same hotel race, and the
// last save wins at whole-collection granularity.
func NewReviewService(repo HotelRepository) ReviewService {
	return &reviewService{repo: repo}
}

type reviewService struct {
	repo HotelRepository
}

func (s *reviewService) List(ctx context.Context, hotelID string) ([]domain.Review, error) {
	hotel, err := s.repo.FindByID(ctx, hotelID, "reviews")
	if err != nil {
		return nil, err
	}
	if hotel.Reviews == nil {
		return []domain.Review{}, nil
	}
	return hotel.Reviews, nil
}

func (s *reviewService) Detail(ctx context.Context, hotelID, reviewID string) (*domain.Review, error) {
	hotel, err := s.repo.FindByID(ctx, hotelID, "reviews")
	if err != nil {
		return nil, err
	}
	review := hotel.Review(reviewID)
	if review == nil {
		return nil, domain.ErrReviewNotFound
	}
	return review, nil
}

// Add appends a new review to the parent's collection and persists the
// parent. The store assigns the identifier during the save, so the returned
// review carries it only once the save has succeeded.
func (s *reviewService) Add(ctx context.Context, hotelID string, fields ReviewFields) (*domain.Review, error) {
	hotel, err := s.repo.FindByID(ctx, hotelID, "reviews")
	if err != nil {
		return nil, err
	}

	hotel.Reviews = append(hotel.Reviews, domain.Review{
		Name:   fields.Name,
		Rating: fields.Rating,
		Review: fields.Review,
	})
	if err := s.repo.Save(ctx, hotel, SectionReviews); err != nil {
		return nil, err
	}
	return &hotel.Reviews[len(hotel.Reviews)-1], nil
}

func (s *reviewService) Replace(ctx context.Context, hotelID, reviewID string, fields ReviewFields) error {
	hotel, err := s.repo.FindByID(ctx, hotelID, "reviews")
	if err != nil {
		return err
	}
	review := hotel.Review(reviewID)
	if review == nil {
		return domain.ErrReviewNotFound
	}

	review.Name = fields.Name
	review.Rating = fields.Rating
	review.Review = fields.Review
	return s.repo.Save(ctx, hotel, SectionReviews)
}

func (s *reviewService) Remove(ctx context.Context, hotelID, reviewID string) error {
	hotel, err := s.repo.FindByID(ctx, hotelID, "reviews")
	if err != nil {
		return err
	}
	if !hotel.RemoveReview(reviewID) {
		return domain.ErrReviewNotFound
	}
	return s.repo.Save(ctx, hotel, SectionReviews)
}
