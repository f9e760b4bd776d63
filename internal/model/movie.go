package model

const (
	// MinMovies is the fewest input titles a recommendation request accepts
	MinMovies = 3
	// MaxMovies is the most input titles a recommendation request accepts
	MaxMovies = 10
	// RecommendationCount is how many recommendations the model is asked for
	RecommendationCount = 5
)

type RecommendRequest struct {
	Movies []string `json:"movies" binding:"required"`
}

type Recommendation struct {
	MovieTitle     string `json:"movie_title"`
	WhyRecommended string `json:"why_recommended"`
}

type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// IsEmpty reports whether the response carries nothing worth returning
func (r *RecommendResponse) IsEmpty() bool {
	return r == nil || len(r.Recommendations) == 0
}
