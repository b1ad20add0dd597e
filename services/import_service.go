package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ImportAuthorID is the synthetic author attached to bulk-imported
// listings. Matching excludes an author's own posts, so a real user id here
// would hide imported spaces from that user.
const ImportAuthorID = "system-import"

// ImportAuthorName is the display name shown on imported listings.
const ImportAuthorName = "Spacematch Listings"

// ImportService ingests space listings scraped from external sources,
// mapping their free-form fields onto the structured attribute vocabulary
// and deduplicating on externalId.
type ImportService struct {
	Dynamo *DynamoService
}

// ImportSummary reports the outcome of a bulk import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportListings stores each listing as an active space post. A listing is
// skipped when it lacks an externalId or title, when a post with the same
// externalId already exists, or when the write fails; failures never abort
// the rest of the batch.
func (is *ImportService) ImportListings(ctx context.Context, listings []models.ExternalListing) ImportSummary {
	summary := ImportSummary{Total: len(listings)}

	for _, listing := range listings {
		if listing.ExternalID == "" || listing.Title == "" {
			summary.Errors = append(summary.Errors, "Skipped listing: missing externalId or title")
			summary.Skipped++
			continue
		}

		if is.externalIDExists(ctx, listing.ExternalID) {
			summary.Skipped++
			continue
		}

		post := MapExternalListing(listing)
		post.ID = uuid.NewString()
		now := time.Now().UTC()
		post.CreatedAt = now
		post.UpdatedAt = now

		if err := is.Dynamo.PutItem(ctx, models.PostsTable, post); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Failed to import %q: %v", listing.Title, err))
			summary.Skipped++
			continue
		}
		summary.Imported++
	}

	log.Printf("✅ Import finished: %d imported, %d skipped of %d", summary.Imported, summary.Skipped, summary.Total)
	return summary
}

// externalIDExists reports whether a post already carries this externalId.
// A failed lookup is treated as not-found so one store hiccup cannot stall
// the whole batch; a duplicate slipping through is harmless.
func (is *ImportService) externalIDExists(ctx context.Context, externalID string) bool {
	var posts []models.Post
	err := is.Dynamo.ScanItems(ctx, models.PostsTable, "externalId = :externalId",
		map[string]types.AttributeValue{
			":externalId": &types.AttributeValueMemberS{Value: externalID},
		}, nil, &posts)
	if err != nil {
		log.Printf("⚠️ Dedup lookup failed for externalId %s: %v", externalID, err)
		return false
	}
	return len(posts) > 0
}

// MapExternalListing converts an external listing into an active space post
// authored by the import system. The id and timestamps are left for the
// caller to assign.
func MapExternalListing(listing models.ExternalListing) models.Post {
	attrs := models.PostAttributes{
		SizeCategory:      MapSizeCategory(listing.Sqft),
		Environment:       MapEnvironment(listing.PropertyType),
		Utilities:         MapUtilities(listing.Amenities),
		Duration:          MapDuration(listing.LeaseTerm, listing.PricePeriod),
		Location:          formatListingLocation(listing),
		HasParking:        matchAmenity(listing.Amenities, "parking"),
		PrivacyLevel:      MapPrivacyLevel(listing.PropertyType),
		HasRestroom:       matchAmenity(listing.Amenities, "restroom", "bathroom"),
		ADAAccessible:     matchAmenity(listing.Amenities, "ada", "accessible", "wheelchair"),
		PetsAllowed:       matchAmenity(listing.Amenities, "pet", "dog", "cat"),
		ClimateControlled: matchAmenity(listing.Amenities, "hvac", "climate", "air condition", "heating"),
		NoiseLevel:        MapNoiseLevel(listing.Amenities),
		UserTypes:         MapUserTypes(listing.PropertyType),
		CustomTags:        listing.Tags,
	}
	if listing.Price > 0 {
		period := attrs.Duration
		if period == "" {
			period = models.DurationMonthly
		}
		attrs.Budget = &models.Budget{Min: listing.Price, Max: listing.Price, Period: period}
	}

	return models.Post{
		Type:           models.PostTypeSpace,
		AuthorID:       ImportAuthorID,
		AuthorName:     ImportAuthorName,
		Title:          listing.Title,
		Description:    listing.Description,
		Images:         listing.Images,
		Attributes:     attrs,
		SearchKeywords: importSearchKeywords(listing.Title, listing.Description, attrs),
		Status:         models.PostStatusActive,
		Source:         listing.Source,
		ExternalID:     listing.ExternalID,
		ExternalURL:    listing.ExternalURL,
		IsImported:     true,
	}
}

// MapSizeCategory buckets square footage into a size category. Zero means
// the source did not report a size.
func MapSizeCategory(sqft int) string {
	switch {
	case sqft <= 0:
		return ""
	case sqft < 500:
		return models.SizeSmall
	case sqft < 1000:
		return models.SizeMedium
	case sqft < 2500:
		return models.SizeLarge
	default:
		return models.SizeExtraLarge
	}
}

// MapEnvironment derives the environment from a free-form property type.
// Anything not recognisably outdoor or mixed-use counts as indoor.
func MapEnvironment(propertyType string) string {
	if propertyType == "" {
		return ""
	}
	lower := strings.ToLower(propertyType)
	if containsAny(lower, "yard", "lot", "outdoor", "garden", "rooftop") {
		return models.EnvironmentOutdoor
	}
	if containsAny(lower, "mixed-use", "mixed use", "flex") {
		return models.EnvironmentMixed
	}
	return models.EnvironmentIndoor
}

// MapUtilities extracts the utilities recognisable in a free-form amenity
// list.
func MapUtilities(amenities []string) []string {
	if len(amenities) == 0 {
		return nil
	}
	var utilities []string
	if matchAmenity(amenities, "wifi", "internet") {
		utilities = append(utilities, models.UtilityWifi)
	}
	if matchAmenity(amenities, "electric") {
		utilities = append(utilities, models.UtilityElectricity)
	}
	if matchAmenity(amenities, "water") {
		utilities = append(utilities, models.UtilityWater)
	}
	if matchAmenity(amenities, "hvac", "air condition", "heating") {
		utilities = append(utilities, models.UtilityHVAC)
	}
	if matchAmenity(amenities, "gas") {
		utilities = append(utilities, models.UtilityGas)
	}
	return utilities
}

// MapPrivacyLevel derives the privacy level from a free-form property type.
func MapPrivacyLevel(propertyType string) string {
	if propertyType == "" {
		return ""
	}
	lower := strings.ToLower(propertyType)
	if containsAny(lower, "coworking", "shared", "open") {
		return models.PrivacyShared
	}
	if containsAny(lower, "suite", "semi") {
		return models.PrivacySemiPrivate
	}
	return models.PrivacyPrivate
}

// MapDuration derives the rental duration from the lease term, falling back
// to the price period when no lease term is given.
func MapDuration(leaseTerm, pricePeriod string) string {
	term := strings.ToLower(leaseTerm)
	if term == "" {
		term = strings.ToLower(pricePeriod)
	}
	switch {
	case strings.Contains(term, "hour"):
		return models.DurationHourly
	case strings.Contains(term, "day") || strings.Contains(term, "daily"):
		return models.DurationDaily
	case strings.Contains(term, "week"):
		return models.DurationWeekly
	case strings.Contains(term, "month"):
		return models.DurationMonthly
	case containsAny(term, "year", "long", "annual"):
		return models.DurationLongTerm
	}
	return ""
}

// MapNoiseLevel reads the noise level off the amenity list, defaulting to
// moderate.
func MapNoiseLevel(amenities []string) string {
	if matchAmenity(amenities, "soundproof", "quiet") {
		return models.NoiseQuiet
	}
	return models.NoiseModerate
}

// MapUserTypes guesses which user types a property type suits.
func MapUserTypes(propertyType string) []string {
	if propertyType == "" {
		return nil
	}
	lower := strings.ToLower(propertyType)
	var userTypes []string
	if containsAny(lower, "studio", "gallery", "art") {
		userTypes = append(userTypes, models.UserTypeArtist)
	}
	if containsAny(lower, "music", "recording", "rehearsal") {
		userTypes = append(userTypes, models.UserTypeMusician)
	}
	if containsAny(lower, "workshop", "maker", "fabrication") {
		userTypes = append(userTypes, models.UserTypeMaker)
	}
	if containsAny(lower, "photo", "studio") {
		userTypes = append(userTypes, models.UserTypePhotographer)
	}
	if containsAny(lower, "office", "coworking", "commercial") {
		userTypes = append(userTypes, models.UserTypeEntrepreneur)
	}
	if containsAny(lower, "classroom", "training") {
		userTypes = append(userTypes, models.UserTypeEducator)
	}
	return userTypes
}

// matchAmenity reports whether any amenity mentions any of the keywords.
func matchAmenity(amenities []string, keywords ...string) bool {
	for _, amenity := range amenities {
		if containsAny(strings.ToLower(amenity), keywords...) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// formatListingLocation builds a display location, preferring
// neighborhood/city/state over the raw address.
func formatListingLocation(listing models.ExternalListing) string {
	var parts []string
	for _, part := range []string{listing.Neighborhood, listing.City, listing.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return listing.Address
}

// importSearchKeywords builds the keyword index for an imported listing.
// Unlike user posts, imports have no author to refine keywords later, so
// the description and every mapped attribute feed the index too.
func importSearchKeywords(title, description string, attrs models.PostAttributes) []string {
	var words []string
	words = append(words, strings.Fields(strings.ToLower(title))...)

	descWords := strings.Fields(strings.ToLower(description))
	if len(descWords) > 100 {
		descWords = descWords[:100]
	}
	words = append(words, descWords...)

	words = append(words, attrs.SizeCategory, attrs.Environment, attrs.Duration, attrs.PrivacyLevel, attrs.NoiseLevel)
	words = append(words, attrs.Utilities...)
	words = append(words, attrs.UserTypes...)
	for _, tag := range attrs.CustomTags {
		words = append(words, strings.ToLower(tag))
	}
	words = append(words, strings.Fields(strings.ToLower(attrs.Location))...)

	if attrs.HasParking {
		words = append(words, "parking")
	}
	if attrs.HasRestroom {
		words = append(words, "restroom", "bathroom")
	}
	if attrs.ADAAccessible {
		words = append(words, "ada", "accessible", "accessibility")
	}
	if attrs.PetsAllowed {
		words = append(words, "pets", "pet-friendly")
	}
	if attrs.ClimateControlled {
		words = append(words, "climate", "ac", "heating")
	}
	words = append(words, "imported")

	seen := map[string]struct{}{}
	var keywords []string
	for _, word := range words {
		word = strings.Trim(word, ",.")
		if len(word) <= 2 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}
