package domain

import "testing"

func hotelWithReviews() *Hotel {
	return &Hotel{
		ID: "h1",
		Reviews: []Review{
			{ID: "a", Name: "Ana", Rating: 4},
			{ID: "b", Name: "Ben", Rating: 2},
			{ID: "c", Name: "Cleo", Rating: 5},
		},
	}
}

func TestReviewLookupReturnsPointerIntoCollection(t *testing.T) {
	hotel := hotelWithReviews()

	review := hotel.Review("b")
	if review == nil {
		t.Fatal("expected to find review b")
	}

	review.Rating = 1
	if hotel.Reviews[1].Rating != 1 {
		t.Fatal("mutation through the lookup pointer should reach the collection")
	}

	if hotel.Review("missing") != nil {
		t.Fatal("expected nil for an unknown identifier")
	}
}

func TestRemoveReview(t *testing.T) {
	hotel := hotelWithReviews()

	if !hotel.RemoveReview("b") {
		t.Fatal("expected removal of review b to succeed")
	}
	if len(hotel.Reviews) != 2 {
		t.Fatalf("expected 2 reviews after removal, got %d", len(hotel.Reviews))
	}
	if hotel.Reviews[0].ID != "a" || hotel.Reviews[1].ID != "c" {
		t.Fatalf("order of the remaining reviews changed: %+v", hotel.Reviews)
	}

	if hotel.RemoveReview("b") {
		t.Fatal("second removal of the same review should report absence")
	}
	if len(hotel.Reviews) != 2 {
		t.Fatalf("failed removal must not shrink the collection, got %d", len(hotel.Reviews))
	}
}
