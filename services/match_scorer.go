package services

import (
	"strings"
	"time"

	"github.com/nvargo-code/Spacematch/models"
)

// Point values for the scoring rules.
const (
	pointsSize        = 10
	pointsEnvironment = 10
	pointsDuration    = 15
	pointsPrivacy     = 10
	pointsNoise       = 10
	pointsPerUtility  = 2
	pointsPerUserType = 5
	pointsPerAmenity  = 3
	pointsLocation    = 20
	pointsAvailNow    = 5
	pointsLongTerm    = 5
)

const longTermSpan = 30 * 24 * time.Hour

// CalculateMatchScore scores a need/space post pair. Argument order does not
// matter; the pair is oriented internally. Returns the score and the list of
// matched-attribute labels, in rule order.
func CalculateMatchScore(post1, post2 *models.Post) (int, []string) {
	return CalculateMatchScoreAt(post1, post2, time.Now())
}

// CalculateMatchScoreAt is CalculateMatchScore with an explicit evaluation
// time for the availability rules.
func CalculateMatchScoreAt(post1, post2 *models.Post, now time.Time) (int, []string) {
	needPost, spacePost := post1, post2
	if post1.Type == models.PostTypeSpace {
		needPost, spacePost = post2, post1
	}

	// Hard requirements: a seeker asking for accessibility, pets, or
	// climate control cannot be paired with a space that lacks it, no
	// matter how well everything else lines up.
	needAttrs := needPost.Attributes
	spaceAttrs := spacePost.Attributes
	if needAttrs.ADAAccessible && !spaceAttrs.ADAAccessible {
		return 0, []string{}
	}
	if needAttrs.PetsAllowed && !spaceAttrs.PetsAllowed {
		return 0, []string{}
	}
	if needAttrs.ClimateControlled && !spaceAttrs.ClimateControlled {
		return 0, []string{}
	}

	score := 0
	matchingAttributes := []string{}

	attrs1 := post1.Attributes
	attrs2 := post2.Attributes

	if attrs1.SizeCategory != "" && attrs1.SizeCategory == attrs2.SizeCategory {
		score += pointsSize
		matchingAttributes = append(matchingAttributes, "Size")
	}

	if attrs1.Environment != "" && attrs1.Environment == attrs2.Environment {
		score += pointsEnvironment
		matchingAttributes = append(matchingAttributes, "Environment")
	}

	if attrs1.Duration != "" && attrs1.Duration == attrs2.Duration {
		score += pointsDuration
		matchingAttributes = append(matchingAttributes, "Duration")
	}

	if attrs1.PrivacyLevel != "" && attrs1.PrivacyLevel == attrs2.PrivacyLevel {
		score += pointsPrivacy
		matchingAttributes = append(matchingAttributes, "Privacy")
	}

	if attrs1.NoiseLevel != "" && attrs1.NoiseLevel == attrs2.NoiseLevel {
		score += pointsNoise
		matchingAttributes = append(matchingAttributes, "Noise Level")
	}

	if n := countCommon(attrs1.Utilities, attrs2.Utilities); n > 0 {
		score += n * pointsPerUtility
		matchingAttributes = append(matchingAttributes, "Utilities")
	}

	if n := countCommon(attrs1.UserTypes, attrs2.UserTypes); n > 0 {
		score += n * pointsPerUserType
		matchingAttributes = append(matchingAttributes, "User Type")
	}

	if attrs1.HasParking && attrs2.HasParking {
		score += pointsPerAmenity
		matchingAttributes = append(matchingAttributes, "Parking")
	}
	if attrs1.HasRestroom && attrs2.HasRestroom {
		score += pointsPerAmenity
		matchingAttributes = append(matchingAttributes, "Restroom")
	}
	if attrs1.ADAAccessible && attrs2.ADAAccessible {
		score += pointsPerAmenity
		matchingAttributes = append(matchingAttributes, "ADA Accessible")
	}
	if attrs1.PetsAllowed && attrs2.PetsAllowed {
		score += pointsPerAmenity
		matchingAttributes = append(matchingAttributes, "Pets Allowed")
	}
	if attrs1.ClimateControlled && attrs2.ClimateControlled {
		score += pointsPerAmenity
		matchingAttributes = append(matchingAttributes, "Climate Control")
	}

	if locationsMatch(attrs1.Location, attrs2.Location) {
		score += pointsLocation
		matchingAttributes = append(matchingAttributes, "Location")
	}

	if spacePost.HasAvailability && spacePost.AvailabilityStart != nil && spacePost.AvailabilityEnd != nil {
		start := *spacePost.AvailabilityStart
		end := *spacePost.AvailabilityEnd
		if !now.Before(start) && !now.After(end) {
			score += pointsAvailNow
			matchingAttributes = append(matchingAttributes, "Available Now")
		}
		if end.Sub(start) > longTermSpan {
			score += pointsLongTerm
			matchingAttributes = append(matchingAttributes, "Long-term Availability")
		}
	}

	return score, matchingAttributes
}

// countCommon returns how many entries of a also appear in b.
func countCommon(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	n := 0
	for _, v := range a {
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

// locationsMatch compares two free-text locations case-insensitively,
// treating substring containment either way as a match ("Brooklyn" matches
// "Brooklyn, NY").
func locationsMatch(loc1, loc2 string) bool {
	if loc1 == "" || loc2 == "" {
		return false
	}
	l1 := strings.ToLower(loc1)
	l2 := strings.ToLower(loc2)
	return l1 == l2 || strings.Contains(l1, l2) || strings.Contains(l2, l1)
}
