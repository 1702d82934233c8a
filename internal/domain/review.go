package domain

// Review is embedded within exactly one Hotel. Its identifier is unique only
// within the parent's review collection.
type Review struct {
	ID     string
	Name   string
	Rating int
	Review string
}

// Review returns a pointer into the embedded collection for the review with
// the given identifier, or nil when no such review exists.
func (h *Hotel) Review(id string) *Review {
	for i := range h.Reviews {
		if h.Reviews[i].ID == id {
			return &h.Reviews[i]
		}
	}
	return nil
}

// RemoveReview removes the review with the given identifier from the embedded
// collection and reports whether it was present.
func (h *Hotel) RemoveReview(id string) bool {
	for i := range h.Reviews {
		if h.Reviews[i].ID == id {
			h.Reviews = append(h.Reviews[:i], h.Reviews[i+1:]...)
			return true
		}
	}
	return false
}
