package request

type AddWatchlistRequest struct {
	MovieID string `json:"movieId" validate:"required,uuid"`
}

// UpdateWatchedRequest uses a pointer so an absent field is distinguishable
// from an explicit false
type UpdateWatchedRequest struct {
	Watched *bool `json:"watched" validate:"required"`
}

// FeedbackRequest carries optional rating and review; either may be sent
// alone. Rating arrives as a JSON number and is range-checked in the service.
type FeedbackRequest struct {
	Rating *float64 `json:"rating,omitempty"`
	Review *string  `json:"review,omitempty"`
}
