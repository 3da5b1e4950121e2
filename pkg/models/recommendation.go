package models

import "time"

// Strategy labels attached to recommendation results.
const (
	StrategyContentBased  = "Content-Based"
	StrategyCollaborative = "Collaborative-Filtering"
	StrategyPopularity    = "Popularity"
	StrategyHybrid        = "Hybrid"
)

type Recommendation struct {
	Movie    Movie   `json:"movie"`
	Score    float64 `json:"score"`
	Strategy string  `json:"strategy"`
}

type RecommendationResponse struct {
	UserID          int64            `json:"userId"`
	Strategy        string           `json:"strategy"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generatedAt"`
}

// ContentSignal is the content-based component of an explanation.
type ContentSignal struct {
	Score         float64  `json:"score"`
	MatchedGenres []string `json:"matchedGenres"`
}

// CollaborativeSignal is the neighbor-prediction component of an explanation.
type CollaborativeSignal struct {
	PredictedRating float64 `json:"predictedRating"`
}

// Explanation decomposes the blended score for a single (user, movie)
// pair. Sub-objects are nil when the corresponding strategy did not
// surface the movie. The popularity nudge used by the hybrid merge is
// intentionally absent here.
type Explanation struct {
	MovieID       int64                `json:"movieId"`
	FinalScore    float64              `json:"finalScore"`
	ContentBased  *ContentSignal       `json:"contentBased"`
	Collaborative *CollaborativeSignal `json:"collaborative"`
}
