package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/nvargo-code/Spacematch/models"
)

// MatchService runs the matching pass and owns match record lifecycle.
type MatchService struct {
	Repo Repository
}

// A candidate must score above zero and share at least this many attribute
// labels with the input post to surface. The floor keeps a single strong
// signal like an identical location from producing a low-signal match.
const minMatchingAttributes = 4

// maxMatchResults caps how many candidates a matching pass returns.
const maxMatchResults = 10

// FindMatches scores the input post against every active post of the
// opposite type and returns up to maxMatchResults candidates, best first.
// A failed candidate fetch yields an empty list, not an error: matching is
// best-effort and must never block the caller's flow.
func (ms *MatchService) FindMatches(ctx context.Context, post *models.Post) []models.MatchResult {
	oppositeType := models.PostTypeSpace
	if post.Type == models.PostTypeSpace {
		oppositeType = models.PostTypeNeed
	}

	candidates, err := ms.Repo.QueryActivePostsByType(ctx, oppositeType)
	if err != nil {
		log.Printf("⚠️ Candidate fetch failed for post %s, returning no matches: %v", post.ID, err)
		return []models.MatchResult{}
	}

	results := []models.MatchResult{}
	for i := range candidates {
		other := &candidates[i]
		if other.AuthorID == post.AuthorID {
			continue
		}

		score, matchingAttributes := CalculateMatchScore(post, other)
		if score <= 0 || len(matchingAttributes) < minMatchingAttributes {
			continue
		}

		results = append(results, models.MatchResult{
			Post: models.MatchResultPost{
				ID:         other.ID,
				Title:      other.Title,
				AuthorName: other.AuthorName,
			},
			Score:              score,
			MatchingAttributes: matchingAttributes,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxMatchResults {
		results = results[:maxMatchResults]
	}
	return results
}

// RecordMatches persists one pending match record per surfaced candidate.
// The input post and each candidate are oriented seeker/landlord by post
// type. A failed write is logged and skipped so one bad candidate does not
// lose the rest.
func (ms *MatchService) RecordMatches(ctx context.Context, post *models.Post, results []models.MatchResult) {
	isSeeker := post.Type == models.PostTypeNeed

	for _, result := range results {
		other, err := ms.Repo.GetPost(ctx, result.Post.ID)
		if err != nil || other == nil {
			log.Printf("⚠️ Skipping match record for post %s: candidate %s unavailable: %v", post.ID, result.Post.ID, err)
			continue
		}

		match := models.Match{
			SeekerPostID:   post.ID,
			LandlordPostID: other.ID,
			SeekerID:       post.AuthorID,
			LandlordID:     other.AuthorID,
			MatchScore:     result.Score,
		}
		if !isSeeker {
			match.SeekerPostID, match.LandlordPostID = other.ID, post.ID
			match.SeekerID, match.LandlordID = other.AuthorID, post.AuthorID
		}

		if _, err := ms.Repo.CreateMatch(ctx, match); err != nil {
			log.Printf("❌ Failed to persist match record (%s ↔ %s): %v", match.SeekerPostID, match.LandlordPostID, err)
		}
	}
}

// CreateMatch records a match directly, as used by the administrative
// creation path. Returns the new match id.
func (ms *MatchService) CreateMatch(ctx context.Context, match models.Match) (string, error) {
	return ms.Repo.CreateMatch(ctx, match)
}

// GetMatch returns a match by id, or (nil, nil) when it does not exist.
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	return ms.Repo.GetMatch(ctx, matchID)
}

// UpdateMatchStatus transitions a match to the given status, attaching the
// payment reference when supplied. Transitions are monotonic
// (pending → paid → connected): a backward transition is an error, and
// re-applying the current status with the same payment ref is a successful
// no-op so webhook retries stay idempotent.
func (ms *MatchService) UpdateMatchStatus(ctx context.Context, matchID, status, paymentRef string) error {
	if !models.IsValidMatchStatus(status) {
		return fmt.Errorf("unknown match status %q", status)
	}

	match, err := ms.Repo.GetMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", matchID, err)
	}
	if match == nil {
		return fmt.Errorf("match %s not found", matchID)
	}

	currentRank := models.MatchStatusRank(match.Status)
	newRank := models.MatchStatusRank(status)
	if newRank < currentRank {
		return fmt.Errorf("match %s: cannot transition from %s back to %s", matchID, match.Status, status)
	}
	if newRank == currentRank && (paymentRef == "" || paymentRef == match.StripePaymentID) {
		return nil
	}

	if err := ms.Repo.UpdateMatchStatus(ctx, matchID, status, paymentRef); err != nil {
		return fmt.Errorf("failed to update match %s status: %w", matchID, err)
	}
	return nil
}

// GetEnrichedUserMatches returns every match involving the user, each
// decorated with the two posts' titles and author names for display.
// A missing post falls back to placeholder text rather than dropping the
// match.
func (ms *MatchService) GetEnrichedUserMatches(ctx context.Context, userID string) ([]models.EnrichedMatch, error) {
	matches, err := ms.Repo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for user %s: %w", userID, err)
	}

	enriched := make([]models.EnrichedMatch, 0, len(matches))
	for _, match := range matches {
		em := models.EnrichedMatch{
			Match:                  match,
			SeekerPostTitle:        "Unknown Post",
			SeekerPostAuthorName:   "Unknown",
			LandlordPostTitle:      "Unknown Post",
			LandlordPostAuthorName: "Unknown",
		}
		if seekerPost, err := ms.Repo.GetPost(ctx, match.SeekerPostID); err == nil && seekerPost != nil {
			em.SeekerPostTitle = seekerPost.Title
			em.SeekerPostAuthorName = seekerPost.AuthorName
		}
		if landlordPost, err := ms.Repo.GetPost(ctx, match.LandlordPostID); err == nil && landlordPost != nil {
			em.LandlordPostTitle = landlordPost.Title
			em.LandlordPostAuthorName = landlordPost.AuthorName
		}
		enriched = append(enriched, em)
	}
	return enriched, nil
}
