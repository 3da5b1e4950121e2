package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

// popularityMergeWeight is the fixed nudge popularity contributes to the
// hybrid merge. It is independent of alpha: its job is to break ties and
// add a little diversity, not to participate in the content/collaborative
// blend.
const popularityMergeWeight = 0.2

// RecommendationOrchestrator fans out to the three strategies, merges
// their scores into one ranked list, and falls back to popularity when a
// user has no personalized signal.
type RecommendationOrchestrator struct {
	content       PersonalizedRecommender
	collaborative PersonalizedRecommender
	popularity    PopularityRecommender
	config        *config.RecommendationConfig
	logger        *logrus.Logger
}

func NewRecommendationOrchestrator(
	content PersonalizedRecommender,
	collaborative PersonalizedRecommender,
	popularity PopularityRecommender,
	config *config.RecommendationConfig,
	logger *logrus.Logger,
) *RecommendationOrchestrator {
	return &RecommendationOrchestrator{
		content:       content,
		collaborative: collaborative,
		popularity:    popularity,
		config:        config,
		logger:        logger,
	}
}

// ContentBasedOnly delegates straight to the content-based strategy with
// the default output limit.
func (o *RecommendationOrchestrator) ContentBasedOnly(ctx context.Context, userID int64) ([]models.Recommendation, error) {
	recommendationRequests.WithLabelValues("content").Inc()
	return o.content.Recommend(ctx, userID, 0)
}

// CollaborativeOnly delegates straight to the collaborative strategy with
// the default output limit.
func (o *RecommendationOrchestrator) CollaborativeOnly(ctx context.Context, userID int64) ([]models.Recommendation, error) {
	recommendationRequests.WithLabelValues("collaborative").Inc()
	return o.collaborative.Recommend(ctx, userID, 0)
}

type strategyResult struct {
	items   []models.Recommendation
	err     error
	latency time.Duration
}

func (o *RecommendationOrchestrator) Hybrid(ctx context.Context, userID int64, limit int, alpha float64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = o.config.DefaultOutputLimit
	}
	if alpha < 0 || alpha > 1 {
		alpha = o.config.HybridWeightAlpha
	}

	recommendationRequests.WithLabelValues("hybrid").Inc()

	// The three strategies are independent; run them concurrently and
	// join. Each writes only its own result slot.
	var (
		wg            sync.WaitGroup
		content       strategyResult
		collaborative strategyResult
		popular       strategyResult
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		start := time.Now()
		content.items, content.err = o.content.Recommend(ctx, userID, o.config.HybridMergeLimit)
		content.latency = time.Since(start)
		strategyDuration.WithLabelValues("content").Observe(content.latency.Seconds())
	}()

	go func() {
		defer wg.Done()
		start := time.Now()
		collaborative.items, collaborative.err = o.collaborative.Recommend(ctx, userID, o.config.HybridMergeLimit)
		collaborative.latency = time.Since(start)
		strategyDuration.WithLabelValues("collaborative").Observe(collaborative.latency.Seconds())
	}()

	go func() {
		defer wg.Done()
		start := time.Now()
		popular.items, popular.err = o.popularity.Recommend(ctx, o.config.HybridMergeLimit)
		popular.latency = time.Since(start)
		strategyDuration.WithLabelValues("popularity").Observe(popular.latency.Seconds())
	}()

	wg.Wait()

	// A failed branch fails the whole request; partial results would
	// silently skew the blend.
	if content.err != nil {
		return nil, fmt.Errorf("content-based strategy: %w", content.err)
	}
	if collaborative.err != nil {
		return nil, fmt.Errorf("collaborative strategy: %w", collaborative.err)
	}
	if popular.err != nil {
		return nil, fmt.Errorf("popularity strategy: %w", popular.err)
	}

	// Cold start: no personalized signal at all, serve the popularity
	// list as-is (it keeps its own strategy label).
	if len(content.items) == 0 && len(collaborative.items) == 0 {
		results := popular.items
		if len(results) > limit {
			results = results[:limit]
		}

		o.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"results": len(results),
		}).Info("Cold start, serving popularity fallback")

		return results, nil
	}

	type hybridEntry struct {
		movie models.Movie
		score float64
	}

	entries := make(map[int64]*hybridEntry)

	merge := func(items []models.Recommendation, weight float64, normalize func(float64) float64) {
		for _, item := range items {
			score := item.Score
			if normalize != nil {
				score = normalize(score)
			}

			entry, ok := entries[item.Movie.MovieID]
			if !ok {
				// First occurrence captures the movie record.
				entry = &hybridEntry{movie: item.Movie}
				entries[item.Movie.MovieID] = entry
			}

			entry.score += weight * score
		}
	}

	merge(content.items, alpha, nil)
	merge(collaborative.items, 1-alpha, func(s float64) float64 { return s / 5 })
	merge(popular.items, popularityMergeWeight, nil)

	results := make([]models.Recommendation, 0, len(entries))
	for _, entry := range entries {
		results = append(results, models.Recommendation{
			Movie:    entry.movie,
			Score:    entry.score,
			Strategy: models.StrategyHybrid,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Movie.MovieID < results[j].Movie.MovieID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	o.logger.WithFields(logrus.Fields{
		"user_id":               userID,
		"alpha":                 alpha,
		"content_items":         len(content.items),
		"collaborative_items":   len(collaborative.items),
		"popularity_items":      len(popular.items),
		"results":               len(results),
		"content_latency":       content.latency,
		"collaborative_latency": collaborative.latency,
		"popularity_latency":    popular.latency,
	}).Info("Hybrid recommendations generated")

	return results, nil
}
