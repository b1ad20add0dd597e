package models

// Size categories
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra-large"
)

// Environments
const (
	EnvironmentIndoor  = "indoor"
	EnvironmentOutdoor = "outdoor"
	EnvironmentMixed   = "mixed"
)

// Utilities
const (
	UtilityElectricity = "electricity"
	UtilityWater       = "water"
	UtilityWifi        = "wifi"
	UtilityHVAC        = "hvac"
	UtilityGas         = "gas"
)

// Durations
const (
	DurationHourly   = "hourly"
	DurationDaily    = "daily"
	DurationWeekly   = "weekly"
	DurationMonthly  = "monthly"
	DurationLongTerm = "long-term"
)

// Privacy levels
const (
	PrivacyPrivate     = "private"
	PrivacySemiPrivate = "semi-private"
	PrivacyShared      = "shared"
)

// Noise levels
const (
	NoiseQuiet    = "quiet"
	NoiseModerate = "moderate"
	NoiseLoud     = "loud"
)

// User types
const (
	UserTypeArtist       = "artist"
	UserTypeMusician     = "musician"
	UserTypeMaker        = "maker"
	UserTypePhotographer = "photographer"
	UserTypeCraftsperson = "craftsperson"
	UserTypeEducator     = "educator"
	UserTypeEntrepreneur = "entrepreneur"
	UserTypeOther        = "other"
)

// Budget is a price range with its billing period. Not scored by the
// matcher; carried for listing display and filters.
type Budget struct {
	Min    int    `dynamodbav:"min" json:"min"`
	Max    int    `dynamodbav:"max" json:"max"`
	Period string `dynamodbav:"period" json:"period"`
}

// PostAttributes is the structured attribute bag on a post. Every field is
// optional: an empty string, nil slice, or false boolean means the author
// expressed no preference, not a negative.
type PostAttributes struct {
	SizeCategory      string   `dynamodbav:"sizeCategory,omitempty" json:"sizeCategory,omitempty"`
	Environment       string   `dynamodbav:"environment,omitempty" json:"environment,omitempty"`
	Utilities         []string `dynamodbav:"utilities,omitempty" json:"utilities,omitempty"`
	Budget            *Budget  `dynamodbav:"budget,omitempty" json:"budget,omitempty"`
	Duration          string   `dynamodbav:"duration,omitempty" json:"duration,omitempty"`
	Location          string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	HasParking        bool     `dynamodbav:"hasParking,omitempty" json:"hasParking,omitempty"`
	PrivacyLevel      string   `dynamodbav:"privacyLevel,omitempty" json:"privacyLevel,omitempty"`
	HasRestroom       bool     `dynamodbav:"hasRestroom,omitempty" json:"hasRestroom,omitempty"`
	ADAAccessible     bool     `dynamodbav:"adaAccessible,omitempty" json:"adaAccessible,omitempty"`
	PetsAllowed       bool     `dynamodbav:"petsAllowed,omitempty" json:"petsAllowed,omitempty"`
	ClimateControlled bool     `dynamodbav:"climateControlled,omitempty" json:"climateControlled,omitempty"`
	NoiseLevel        string   `dynamodbav:"noiseLevel,omitempty" json:"noiseLevel,omitempty"`
	UserTypes         []string `dynamodbav:"userTypes,omitempty" json:"userTypes,omitempty"`
	CustomTags        []string `dynamodbav:"customTags,omitempty" json:"customTags,omitempty"`
}
