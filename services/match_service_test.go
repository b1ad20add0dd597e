package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
)

// fakeRepo is an in-memory Repository for service tests. Candidate order is
// the insertion order of posts, which keeps ranking tests deterministic.
type fakeRepo struct {
	posts   []models.Post
	matches map[string]*models.Match

	nextMatchID int
	queryErr    error
	createErr   error
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{matches: map[string]*models.Match{}}
}

func (f *fakeRepo) addPost(post models.Post) {
	f.posts = append(f.posts, post)
}

func (f *fakeRepo) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == postID {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) QueryActivePostsByType(ctx context.Context, postType string) ([]models.Post, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var result []models.Post
	for _, post := range f.posts {
		if post.Type == postType && post.Status == models.PostStatusActive {
			result = append(result, post)
		}
	}
	return result, nil
}

func (f *fakeRepo) CreateMatch(ctx context.Context, match models.Match) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextMatchID++
	match.ID = fmt.Sprintf("match-%d", f.nextMatchID)
	match.Status = models.MatchStatusPending
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now
	f.matches[match.ID] = &match
	return match.ID, nil
}

func (f *fakeRepo) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, ok := f.matches[matchID]
	if !ok {
		return nil, nil
	}
	copied := *match
	return &copied, nil
}

func (f *fakeRepo) UpdateMatchStatus(ctx context.Context, matchID, status, paymentRef string) error {
	f.updateCalls++
	match, ok := f.matches[matchID]
	if !ok {
		return errors.New("match not found in store")
	}
	match.Status = status
	if paymentRef != "" {
		match.StripePaymentID = paymentRef
	}
	match.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeRepo) GetUserMatches(ctx context.Context, userID string) ([]models.Match, error) {
	var result []models.Match
	for _, match := range f.matches {
		if match.SeekerID == userID || match.LandlordID == userID {
			result = append(result, *match)
		}
	}
	return result, nil
}

// richAttrs overlaps on enough rules to clear the attribute floor.
func richAttrs() models.PostAttributes {
	return models.PostAttributes{
		SizeCategory: models.SizeMedium,
		Environment:  models.EnvironmentIndoor,
		Duration:     models.DurationMonthly,
		PrivacyLevel: models.PrivacyPrivate,
		NoiseLevel:   models.NoiseQuiet,
	}
}

func activeSpace(id, authorID string, attrs models.PostAttributes) models.Post {
	return models.Post{
		ID:         id,
		Type:       models.PostTypeSpace,
		AuthorID:   authorID,
		AuthorName: "Landlord " + authorID,
		Title:      "Space " + id,
		Status:     models.PostStatusActive,
		Attributes: attrs,
	}
}

func activeNeed(id, authorID string, attrs models.PostAttributes) models.Post {
	return models.Post{
		ID:         id,
		Type:       models.PostTypeNeed,
		AuthorID:   authorID,
		AuthorName: "Seeker " + authorID,
		Title:      "Need " + id,
		Status:     models.PostStatusActive,
		Attributes: attrs,
	}
}

func TestFindMatches_ExcludesOwnPosts(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "user-1", richAttrs())
	repo.addPost(need)
	repo.addPost(activeSpace("space-own", "user-1", richAttrs()))
	repo.addPost(activeSpace("space-other", "user-2", richAttrs()))

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	require.Len(t, results, 1)
	assert.Equal(t, "space-other", results[0].Post.ID)
}

func TestFindMatches_SkipsInactiveAndWrongType(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "user-1", richAttrs())
	repo.addPost(need)

	closed := activeSpace("space-closed", "user-2", richAttrs())
	closed.Status = models.PostStatusClosed
	repo.addPost(closed)
	repo.addPost(activeNeed("need-2", "user-3", richAttrs())) // same type, ignored
	repo.addPost(activeSpace("space-live", "user-4", richAttrs()))

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	require.Len(t, results, 1)
	assert.Equal(t, "space-live", results[0].Post.ID)
}

func TestFindMatches_EnforcesAttributeFloor(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "user-1", models.PostAttributes{
		Location:     "Brooklyn, NY",
		SizeCategory: models.SizeSmall,
	})
	repo.addPost(need)
	// Location-only overlap: 20 points but a single label.
	repo.addPost(activeSpace("space-location", "user-2", models.PostAttributes{
		Location: "Brooklyn, NY",
	}))

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	assert.Empty(t, results)
}

func TestFindMatches_RanksAndTruncates(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "user-1", models.PostAttributes{
		SizeCategory: models.SizeMedium,
		Environment:  models.EnvironmentIndoor,
		Duration:     models.DurationMonthly,
		PrivacyLevel: models.PrivacyPrivate,
		NoiseLevel:   models.NoiseQuiet,
		Utilities: []string{
			models.UtilityElectricity, models.UtilityWater, models.UtilityWifi,
			models.UtilityHVAC, models.UtilityGas,
		},
	})
	repo.addPost(need)

	// Eleven qualifying spaces with strictly different scores: each shares
	// the five scalar attributes plus i common utilities (i = 0..10 is not
	// possible with 5 utilities, so vary user types instead).
	userTypes := []string{
		models.UserTypeArtist, models.UserTypeMusician, models.UserTypeMaker,
		models.UserTypePhotographer, models.UserTypeCraftsperson,
		models.UserTypeEducator, models.UserTypeEntrepreneur, models.UserTypeOther,
		"welder", "sculptor", "printmaker",
	}
	need.Attributes.UserTypes = userTypes
	repo.posts[0] = need

	for i := 0; i < 11; i++ {
		attrs := richAttrs()
		attrs.UserTypes = userTypes[:i+1] // i+1 shared types → +5 each
		repo.addPost(activeSpace(fmt.Sprintf("space-%02d", i), fmt.Sprintf("landlord-%d", i), attrs))
	}

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	require.Len(t, results, 10)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	// The lowest-scoring space (one shared type) is the one cut.
	for _, r := range results {
		assert.NotEqual(t, "space-00", r.Post.ID)
	}
}

func TestFindMatches_StableOrderForTies(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "user-1", richAttrs())
	repo.addPost(need)
	repo.addPost(activeSpace("space-a", "user-2", richAttrs()))
	repo.addPost(activeSpace("space-b", "user-3", richAttrs()))

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "space-a", results[0].Post.ID)
	assert.Equal(t, "space-b", results[1].Post.ID)
}

func TestFindMatches_FetchFailureReturnsEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.queryErr = errors.New("store unreachable")
	need := activeNeed("need-1", "user-1", richAttrs())

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestFindMatches_FromSpaceSide(t *testing.T) {
	repo := newFakeRepo()
	space := activeSpace("space-1", "landlord-1", richAttrs())
	repo.addPost(space)
	repo.addPost(activeNeed("need-1", "seeker-1", richAttrs()))

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &space)

	require.Len(t, results, 1)
	assert.Equal(t, "need-1", results[0].Post.ID)
}

func TestRecordMatches_OrientsSeekerAndLandlord(t *testing.T) {
	repo := newFakeRepo()
	need := activeNeed("need-1", "seeker-1", richAttrs())
	space := activeSpace("space-1", "landlord-1", richAttrs())
	repo.addPost(need)
	repo.addPost(space)

	ms := &services.MatchService{Repo: repo}

	// From the need side.
	results := ms.FindMatches(context.Background(), &need)
	require.Len(t, results, 1)
	ms.RecordMatches(context.Background(), &need, results)

	require.Len(t, repo.matches, 1)
	for _, match := range repo.matches {
		assert.Equal(t, "need-1", match.SeekerPostID)
		assert.Equal(t, "space-1", match.LandlordPostID)
		assert.Equal(t, "seeker-1", match.SeekerID)
		assert.Equal(t, "landlord-1", match.LandlordID)
		assert.Equal(t, models.MatchStatusPending, match.Status)
		assert.Equal(t, results[0].Score, match.MatchScore)
	}

	// From the space side the orientation must be identical.
	repo2 := newFakeRepo()
	repo2.addPost(need)
	repo2.addPost(space)
	ms2 := &services.MatchService{Repo: repo2}

	results2 := ms2.FindMatches(context.Background(), &space)
	require.Len(t, results2, 1)
	ms2.RecordMatches(context.Background(), &space, results2)

	for _, match := range repo2.matches {
		assert.Equal(t, "need-1", match.SeekerPostID)
		assert.Equal(t, "space-1", match.LandlordPostID)
		assert.Equal(t, "seeker-1", match.SeekerID)
		assert.Equal(t, "landlord-1", match.LandlordID)
	}
}

func TestRecordMatches_SkipsFailedWrites(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("write throttled")
	need := activeNeed("need-1", "seeker-1", richAttrs())
	space := activeSpace("space-1", "landlord-1", richAttrs())
	repo.addPost(need)
	repo.addPost(space)

	ms := &services.MatchService{Repo: repo}
	results := ms.FindMatches(context.Background(), &need)
	require.NotEmpty(t, results)

	// Must not panic or abort; the failure is logged and skipped.
	ms.RecordMatches(context.Background(), &need, results)
	assert.Empty(t, repo.matches)
}

func TestUpdateMatchStatus_Transitions(t *testing.T) {
	repo := newFakeRepo()
	matchID, err := repo.CreateMatch(context.Background(), models.Match{
		SeekerPostID:   "need-1",
		LandlordPostID: "space-1",
		SeekerID:       "seeker-1",
		LandlordID:     "landlord-1",
		MatchScore:     42,
	})
	require.NoError(t, err)

	ms := &services.MatchService{Repo: repo}
	ctx := context.Background()

	// pending → connected with payment ref.
	require.NoError(t, ms.UpdateMatchStatus(ctx, matchID, models.MatchStatusConnected, "pi_123"))
	match, err := ms.GetMatch(ctx, matchID)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, models.MatchStatusConnected, match.Status)
	assert.Equal(t, "pi_123", match.StripePaymentID)

	// Re-applying the same transition is a no-op, not another write.
	writes := repo.updateCalls
	require.NoError(t, ms.UpdateMatchStatus(ctx, matchID, models.MatchStatusConnected, "pi_123"))
	assert.Equal(t, writes, repo.updateCalls)

	// Status never regresses.
	err = ms.UpdateMatchStatus(ctx, matchID, models.MatchStatusPending, "")
	assert.Error(t, err)
	match, _ = ms.GetMatch(ctx, matchID)
	assert.Equal(t, models.MatchStatusConnected, match.Status)
}

func TestUpdateMatchStatus_Errors(t *testing.T) {
	repo := newFakeRepo()
	ms := &services.MatchService{Repo: repo}
	ctx := context.Background()

	assert.Error(t, ms.UpdateMatchStatus(ctx, "missing", models.MatchStatusConnected, "pi_1"))
	assert.Error(t, ms.UpdateMatchStatus(ctx, "missing", "archived", ""))
}

func TestGetEnrichedUserMatches(t *testing.T) {
	repo := newFakeRepo()
	repo.addPost(activeNeed("need-1", "seeker-1", richAttrs()))
	repo.addPost(activeSpace("space-1", "landlord-1", richAttrs()))

	matchID, err := repo.CreateMatch(context.Background(), models.Match{
		SeekerPostID:   "need-1",
		LandlordPostID: "space-1",
		SeekerID:       "seeker-1",
		LandlordID:     "landlord-1",
		MatchScore:     55,
	})
	require.NoError(t, err)

	// A second match referencing a deleted post falls back to placeholders.
	_, err = repo.CreateMatch(context.Background(), models.Match{
		SeekerPostID:   "need-gone",
		LandlordPostID: "space-1",
		SeekerID:       "seeker-1",
		LandlordID:     "landlord-1",
		MatchScore:     40,
	})
	require.NoError(t, err)

	ms := &services.MatchService{Repo: repo}
	enriched, err := ms.GetEnrichedUserMatches(context.Background(), "seeker-1")
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	byID := map[string]models.EnrichedMatch{}
	for _, em := range enriched {
		byID[em.ID] = em
	}

	full := byID[matchID]
	assert.Equal(t, "Need need-1", full.SeekerPostTitle)
	assert.Equal(t, "Seeker seeker-1", full.SeekerPostAuthorName)
	assert.Equal(t, "Space space-1", full.LandlordPostTitle)
	assert.Equal(t, "Landlord landlord-1", full.LandlordPostAuthorName)

	for id, em := range byID {
		if id == matchID {
			continue
		}
		assert.Equal(t, "Unknown Post", em.SeekerPostTitle)
		assert.Equal(t, "Unknown", em.SeekerPostAuthorName)
	}
}
