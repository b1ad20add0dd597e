package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
)

func needPost(attrs models.PostAttributes) *models.Post {
	return &models.Post{
		ID:         "need-1",
		Type:       models.PostTypeNeed,
		AuthorID:   "seeker-1",
		Status:     models.PostStatusActive,
		Attributes: attrs,
	}
}

func spacePost(attrs models.PostAttributes) *models.Post {
	return &models.Post{
		ID:         "space-1",
		Type:       models.PostTypeSpace,
		AuthorID:   "landlord-1",
		Status:     models.PostStatusActive,
		Attributes: attrs,
	}
}

func TestCalculateMatchScore_FullOverlap(t *testing.T) {
	attrs := models.PostAttributes{
		SizeCategory: models.SizeMedium,
		Environment:  models.EnvironmentIndoor,
		Duration:     models.DurationMonthly,
		PrivacyLevel: models.PrivacyPrivate,
		NoiseLevel:   models.NoiseQuiet,
		HasParking:   true,
	}

	score, labels := services.CalculateMatchScore(needPost(attrs), spacePost(attrs))

	// 10 size + 10 environment + 15 duration + 10 privacy + 10 noise + 3 parking
	assert.Equal(t, 68, score)
	assert.Equal(t, []string{"Size", "Environment", "Duration", "Privacy", "Noise Level", "Parking"}, labels)
}

func TestCalculateMatchScore_ArgumentOrderDoesNotMatter(t *testing.T) {
	need := needPost(models.PostAttributes{
		SizeCategory: models.SizeLarge,
		Utilities:    []string{models.UtilityWifi, models.UtilityWater},
		Location:     "Brooklyn, NY",
	})
	space := spacePost(models.PostAttributes{
		SizeCategory: models.SizeLarge,
		Utilities:    []string{models.UtilityWifi, models.UtilityWater, models.UtilityGas},
		Location:     "brooklyn, ny",
	})

	score1, labels1 := services.CalculateMatchScore(need, space)
	score2, labels2 := services.CalculateMatchScore(space, need)

	assert.Equal(t, score1, score2)
	assert.Equal(t, labels1, labels2)
}

func TestCalculateMatchScore_Deterministic(t *testing.T) {
	need := needPost(models.PostAttributes{
		SizeCategory: models.SizeSmall,
		Environment:  models.EnvironmentOutdoor,
		UserTypes:    []string{models.UserTypeArtist, models.UserTypeMaker},
	})
	space := spacePost(models.PostAttributes{
		SizeCategory: models.SizeSmall,
		Environment:  models.EnvironmentOutdoor,
		UserTypes:    []string{models.UserTypeMaker, models.UserTypeArtist},
	})

	now := time.Now()
	score1, labels1 := services.CalculateMatchScoreAt(need, space, now)
	score2, labels2 := services.CalculateMatchScoreAt(need, space, now)

	assert.Equal(t, score1, score2)
	assert.Equal(t, labels1, labels2)
}

func TestCalculateMatchScore_HardRequirements(t *testing.T) {
	base := models.PostAttributes{
		SizeCategory: models.SizeMedium,
		Environment:  models.EnvironmentIndoor,
		Duration:     models.DurationMonthly,
		PrivacyLevel: models.PrivacyPrivate,
		NoiseLevel:   models.NoiseQuiet,
		Location:     "Oakland, CA",
	}

	tests := []struct {
		name    string
		require func(*models.PostAttributes)
	}{
		{"ada_accessible", func(a *models.PostAttributes) { a.ADAAccessible = true }},
		{"pets_allowed", func(a *models.PostAttributes) { a.PetsAllowed = true }},
		{"climate_controlled", func(a *models.PostAttributes) { a.ClimateControlled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needAttrs := base
			tt.require(&needAttrs)

			// The space overlaps heavily but lacks the required capability.
			score, labels := services.CalculateMatchScore(needPost(needAttrs), spacePost(base))

			assert.Equal(t, 0, score)
			assert.Empty(t, labels)
		})
	}
}

func TestCalculateMatchScore_HardRequirementSatisfied(t *testing.T) {
	needAttrs := models.PostAttributes{
		SizeCategory:  models.SizeMedium,
		ADAAccessible: true,
	}
	spaceAttrs := models.PostAttributes{
		SizeCategory:  models.SizeMedium,
		ADAAccessible: true,
	}

	score, labels := services.CalculateMatchScore(needPost(needAttrs), spacePost(spaceAttrs))

	assert.Equal(t, 13, score)
	assert.Equal(t, []string{"Size", "ADA Accessible"}, labels)
}

func TestCalculateMatchScore_SpaceMayOfferMoreThanRequested(t *testing.T) {
	// Capabilities offered by the space but not requested never reject.
	score, labels := services.CalculateMatchScore(
		needPost(models.PostAttributes{SizeCategory: models.SizeSmall}),
		spacePost(models.PostAttributes{
			SizeCategory:      models.SizeSmall,
			ADAAccessible:     true,
			PetsAllowed:       true,
			ClimateControlled: true,
		}),
	)

	assert.Equal(t, 10, score)
	assert.Equal(t, []string{"Size"}, labels)
}

func TestCalculateMatchScore_LocationOnly(t *testing.T) {
	score, labels := services.CalculateMatchScore(
		needPost(models.PostAttributes{Location: "Brooklyn, NY"}),
		spacePost(models.PostAttributes{Location: "Brooklyn, NY"}),
	)

	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"Location"}, labels)
}

func TestCalculateMatchScore_LocationContainment(t *testing.T) {
	score, labels := services.CalculateMatchScore(
		needPost(models.PostAttributes{Location: "Brooklyn"}),
		spacePost(models.PostAttributes{Location: "brooklyn, ny"}),
	)

	assert.Equal(t, 20, score)
	assert.Equal(t, []string{"Location"}, labels)
}

func TestCalculateMatchScore_SetOverlapCounts(t *testing.T) {
	need := needPost(models.PostAttributes{
		Utilities: []string{models.UtilityElectricity, models.UtilityWater, models.UtilityWifi},
		UserTypes: []string{models.UserTypeMusician, models.UserTypePhotographer},
	})
	space := spacePost(models.PostAttributes{
		Utilities: []string{models.UtilityWater, models.UtilityWifi, models.UtilityHVAC},
		UserTypes: []string{models.UserTypeMusician},
	})

	score, labels := services.CalculateMatchScore(need, space)

	// 2 utilities x 2 + 1 user type x 5, one label per rule regardless of count.
	assert.Equal(t, 9, score)
	assert.Equal(t, []string{"Utilities", "User Type"}, labels)
}

func TestCalculateMatchScore_EmptyAttributesNeverMatch(t *testing.T) {
	score, labels := services.CalculateMatchScore(
		needPost(models.PostAttributes{}),
		spacePost(models.PostAttributes{}),
	)

	assert.Equal(t, 0, score)
	assert.Empty(t, labels)
}

func TestCalculateMatchScoreAt_Availability(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		wantScore  int
		wantLabels []string
	}{
		{
			name:       "available_now_short_window",
			start:      now.AddDate(0, 0, -5),
			end:        now.AddDate(0, 0, 5),
			wantScore:  5,
			wantLabels: []string{"Available Now"},
		},
		{
			name:       "available_now_and_long_term",
			start:      now.AddDate(0, 0, -10),
			end:        now.AddDate(0, 0, 60),
			wantScore:  10,
			wantLabels: []string{"Available Now", "Long-term Availability"},
		},
		{
			name:       "future_long_term_window",
			start:      now.AddDate(0, 1, 0),
			end:        now.AddDate(0, 4, 0),
			wantScore:  5,
			wantLabels: []string{"Long-term Availability"},
		},
		{
			name:       "window_in_the_past",
			start:      now.AddDate(0, 0, -20),
			end:        now.AddDate(0, 0, -10),
			wantScore:  0,
			wantLabels: nil,
		},
		{
			name:       "exactly_thirty_days_is_not_long_term",
			start:      now.AddDate(0, 0, 10),
			end:        now.AddDate(0, 0, 40),
			wantScore:  0,
			wantLabels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := spacePost(models.PostAttributes{})
			space.HasAvailability = true
			start, end := tt.start, tt.end
			space.AvailabilityStart = &start
			space.AvailabilityEnd = &end

			score, labels := services.CalculateMatchScoreAt(needPost(models.PostAttributes{}), space, now)

			assert.Equal(t, tt.wantScore, score)
			if tt.wantLabels == nil {
				assert.Empty(t, labels)
			} else {
				assert.Equal(t, tt.wantLabels, labels)
			}
		})
	}
}

func TestCalculateMatchScoreAt_AvailabilityRequiresWindow(t *testing.T) {
	space := spacePost(models.PostAttributes{})
	space.HasAvailability = true // flag set but no window stored

	score, labels := services.CalculateMatchScoreAt(needPost(models.PostAttributes{}), space, time.Now())

	require.Equal(t, 0, score)
	require.Empty(t, labels)
}
