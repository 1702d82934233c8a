package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/domain"
)

func TestListPassesPaginationThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := application.NewHotelQueryService(repo)

	if _, err := svc.List(context.Background(), 5, 10); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastSkip != 5 || repo.lastLimit != 10 {
		t.Fatalf("expected skip=5 limit=10, got skip=%d limit=%d", repo.lastSkip, repo.lastLimit)
	}
}

func TestNearestUsesFixedBounds(t *testing.T) {
	repo := &fakeRepo{}
	svc := application.NewHotelQueryService(repo)

	if _, err := svc.Nearest(context.Background(), -0.969, 51.455); err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if repo.lastGeoOpts.MaxDistance != 2000 {
		t.Fatalf("expected a 2000 metre radius, got %v", repo.lastGeoOpts.MaxDistance)
	}
	if repo.lastGeoOpts.Limit != 5 {
		t.Fatalf("expected at most 5 results, got %d", repo.lastGeoOpts.Limit)
	}
}

func TestCreateAppliesEveryField(t *testing.T) {
	repo := &fakeRepo{}
	svc := application.NewHotelCommandService(repo)

	hotel, err := svc.Create(context.Background(), application.HotelFields{
		Name:        "The Grange",
		Description: "Victorian townhouse",
		Stars:       4,
		Services:    []string{"wifi", "bar"},
		Photos:      []string{"front.jpg"},
		Currency:    "GBP",
		Address:     "97 Duke St",
		Lng:         -0.969,
		Lat:         51.455,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if hotel.ID == "" {
		t.Fatal("expected the store to assign an identifier")
	}
	if hotel.Name != "The Grange" || hotel.Stars != 4 || hotel.Currency != "GBP" {
		t.Fatalf("fields not applied: %+v", hotel)
	}
	coords := hotel.Location.Coordinates
	if len(coords) != 2 || coords[0] != -0.969 || coords[1] != 51.455 {
		t.Fatalf("expected [lng lat] coordinates, got %v", coords)
	}
}

func TestReplaceLoadsWithoutReviews(t *testing.T) {
	repo := &fakeRepo{hotel: &domain.Hotel{
		ID:          "hotel0001",
		Name:        "The Grange",
		Description: "old description",
		Currency:    "GBP",
	}}
	svc := application.NewHotelCommandService(repo)

	err := svc.Replace(context.Background(), "hotel0001", application.HotelFields{
		Name:  "The Grange Hotel",
		Stars: 3,
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	want := []string{"-reviews", "-rooms"}
	if len(repo.lastFindFields) != len(want) ||
		repo.lastFindFields[0] != want[0] || repo.lastFindFields[1] != want[1] {
		t.Fatalf("expected exclusion projection %v, got %v", want, repo.lastFindFields)
	}
	if len(repo.lastSections) != 1 || repo.lastSections[0] != application.SectionFields {
		t.Fatalf("expected a fields-section save, got %v", repo.lastSections)
	}

	stored := repo.hotel
	if stored.Name != "The Grange Hotel" || stored.Stars != 3 {
		t.Fatalf("fields not replaced: %+v", stored)
	}
	if stored.Description != "" || stored.Currency != "" {
		t.Fatalf("omitted fields should be cleared, got description=%q currency=%q",
			stored.Description, stored.Currency)
	}
}

func TestReplaceMissingHotel(t *testing.T) {
	repo := &fakeRepo{}
	svc := application.NewHotelCommandService(repo)

	err := svc.Replace(context.Background(), "missing", application.HotelFields{Name: "x"})
	if !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
	if repo.saveCount != 0 {
		t.Fatalf("no save expected for a missing hotel, got %d", repo.saveCount)
	}
}

func TestRemoveDeletesDocument(t *testing.T) {
	repo := &fakeRepo{hotel: &domain.Hotel{ID: "hotel0001", Name: "The Grange"}}
	svc := application.NewHotelCommandService(repo)

	if err := svc.Remove(context.Background(), "hotel0001"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if repo.hotel != nil {
		t.Fatal("document should be gone after remove")
	}

	err := svc.Remove(context.Background(), "hotel0001")
	if !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound on a second remove, got %v", err)
	}
}
