package registry

import "github.com/cornndawwg/icatalyst-production-sub001/internal/domain"

// DefaultPersonaName is the fallback persona when no signal meets the
// confidence floor
const DefaultPersonaName = "homeowner"

// Product categories used across the built-in personas and the seed catalog
const (
	CategorySecurity      = "security"
	CategoryLighting      = "lighting"
	CategoryAudioVideo    = "audio-video"
	CategoryClimate       = "climate"
	CategoryNetworking    = "networking"
	CategoryAccessControl = "access-control"
	CategoryConferencing  = "conferencing"
)

// defaultPersonas returns the built-in persona table. Declaration order is
// significant: it is the deterministic tie-break for equal raw scores.
func defaultPersonas() []domain.PersonaConfig {
	return []domain.PersonaConfig{
		{
			Name:            "homeowner",
			Type:            domain.ProjectTypeResidential,
			DisplayName:     "Homeowner",
			KeyFeatures:     []string{"whole-home audio", "smart lighting", "security cameras", "family-friendly control"},
			TierPreference:  domain.TierBetter,
			PriceMultiplier: 1.0,
			BudgetMin:       8000,
			BudgetMax:       30000,
			ConfidenceBoost: 0.3,
			RequiredCategories: []string{
				CategorySecurity, CategoryLighting, CategoryAudioVideo,
			},
			OptionalCategories: []string{CategoryNetworking, CategoryClimate},
			PreferredBrands:    []string{"Ring", "Lutron", "Sonos"},
			MinItems:           3,
			MaxItems:           5,
		},
		{
			Name:            "tech-enthusiast",
			Type:            domain.ProjectTypeResidential,
			DisplayName:     "Tech Enthusiast",
			KeyFeatures:     []string{"whole-home automation", "enterprise networking", "voice control", "DIY integration"},
			TierPreference:  domain.TierBest,
			PriceMultiplier: 1.15,
			BudgetMin:       15000,
			BudgetMax:       60000,
			ConfidenceBoost: 0.25,
			RequiredCategories: []string{
				CategoryNetworking, CategoryAudioVideo, CategoryLighting, CategorySecurity,
			},
			OptionalCategories: []string{CategoryClimate, CategoryAccessControl},
			PreferredBrands:    []string{"Ubiquiti", "Control4", "Lutron"},
			MinItems:           4,
			MaxItems:           6,
		},
		{
			Name:            "luxury-estate",
			Type:            domain.ProjectTypeResidential,
			DisplayName:     "Luxury Estate Owner",
			KeyFeatures:     []string{"dedicated theater", "estate-wide audio", "landscape lighting", "concierge-grade support"},
			TierPreference:  domain.TierBest,
			PriceMultiplier: 1.5,
			BudgetMin:       50000,
			BudgetMax:       250000,
			ConfidenceBoost: 0.2,
			RequiredCategories: []string{
				CategoryAudioVideo, CategoryLighting, CategorySecurity, CategoryClimate,
			},
			OptionalCategories: []string{CategoryNetworking, CategoryAccessControl},
			PreferredBrands:    []string{"Crestron", "Lutron", "Savant"},
			MinItems:           4,
			MaxItems:           7,
		},
		{
			Name:            "property-manager",
			Type:            domain.ProjectTypeCommercial,
			DisplayName:     "Property Manager",
			KeyFeatures:     []string{"multi-unit access control", "common-area surveillance", "remote management", "tenant turnover workflows"},
			TierPreference:  domain.TierGood,
			PriceMultiplier: 0.9,
			BudgetMin:       20000,
			BudgetMax:       100000,
			ConfidenceBoost: 0.25,
			RequiredCategories: []string{
				CategorySecurity, CategoryAccessControl, CategoryNetworking,
			},
			OptionalCategories: []string{CategoryLighting, CategoryClimate},
			PreferredBrands:    []string{"Ring", "Ubiquiti", "Honeywell"},
			MinItems:           3,
			MaxItems:           5,
		},
		{
			Name:            "business-owner",
			Type:            domain.ProjectTypeCommercial,
			DisplayName:     "Business Owner",
			KeyFeatures:     []string{"storefront security", "background audio", "guest wifi", "digital signage"},
			TierPreference:  domain.TierBetter,
			PriceMultiplier: 1.0,
			BudgetMin:       10000,
			BudgetMax:       50000,
			ConfidenceBoost: 0.25,
			RequiredCategories: []string{
				CategorySecurity, CategoryNetworking, CategoryAudioVideo,
			},
			OptionalCategories: []string{CategoryLighting, CategoryConferencing},
			PreferredBrands:    []string{"Ubiquiti", "Samsung", "Sonos"},
			MinItems:           3,
			MaxItems:           5,
		},
		{
			Name:            "facilities-manager",
			Type:            domain.ProjectTypeCommercial,
			DisplayName:     "Facilities Manager",
			KeyFeatures:     []string{"building-wide access control", "HVAC integration", "compliance reporting", "campus surveillance"},
			TierPreference:  domain.TierGood,
			PriceMultiplier: 0.85,
			BudgetMin:       30000,
			BudgetMax:       150000,
			ConfidenceBoost: 0.2,
			RequiredCategories: []string{
				CategorySecurity, CategoryAccessControl, CategoryClimate, CategoryNetworking,
			},
			OptionalCategories: []string{CategoryLighting, CategoryConferencing},
			PreferredBrands:    []string{"Honeywell", "Axis", "Ubiquiti"},
			MinItems:           4,
			MaxItems:           6,
		},
	}
}

// defaultPatterns returns the built-in detection vocabulary. All entries are
// lower-case and punctuation-free to match normalized input; phrases carry
// higher weights than single keywords.
func defaultPatterns() map[string]domain.DetectionPattern {
	return map[string]domain.DetectionPattern{
		"homeowner": {
			Keywords: map[string]float64{
				"house": 2.0, "home": 2.0, "family": 1.5, "bedroom": 1.5,
				"kitchen": 1.5, "backyard": 1.5, "garage": 1.5, "yard": 1.0,
				"kids": 1.5, "nursery": 1.5,
			},
			Phrases: map[string]float64{
				"my house": 4.0, "my home": 4.0, "whole home audio": 5.0,
				"home theater": 4.0, "smart lighting": 3.0, "security cameras": 3.0,
				"for my family": 4.0,
			},
			ContextClues: []string{"house", "home", "family", "apartment", "condo"},
		},
		"tech-enthusiast": {
			Keywords: map[string]float64{
				"automation": 2.0, "integration": 2.0, "gadget": 2.0, "diy": 2.0,
				"network": 1.5, "wifi": 1.5, "server": 1.5, "api": 2.0,
				"zigbee": 2.5, "matter": 1.5, "homekit": 2.5,
			},
			Phrases: map[string]float64{
				"home automation": 4.0, "voice control": 3.0, "home network": 3.0,
				"smart home hub": 4.0, "home assistant": 4.0, "automate everything": 5.0,
			},
			ContextClues: []string{"home", "house", "apartment", "my setup"},
		},
		"luxury-estate": {
			Keywords: map[string]float64{
				"estate": 3.0, "luxury": 2.5, "mansion": 3.0, "villa": 2.5,
				"architect": 2.0, "designer": 1.5, "pool": 1.5, "cellar": 2.0,
			},
			Phrases: map[string]float64{
				"wine cellar": 3.5, "guest house": 3.5, "dedicated theater": 4.0,
				"landscape lighting": 3.0, "luxury home": 4.0, "whole estate": 4.5,
			},
			ContextClues: []string{"estate", "home", "residence", "property grounds"},
		},
		"property-manager": {
			Keywords: map[string]float64{
				"tenant": 3.0, "tenants": 3.0, "units": 2.0, "lease": 2.5,
				"portfolio": 2.0, "hoa": 2.0, "landlord": 3.0, "vacancy": 2.0,
			},
			Phrases: map[string]float64{
				"property management": 4.0, "apartment complex": 4.0,
				"rental units": 4.0, "common areas": 3.0, "multi family": 3.5,
			},
			ContextClues: []string{"tenants", "units", "portfolio", "commercial property", "building"},
		},
		"business-owner": {
			Keywords: map[string]float64{
				"business": 2.5, "office": 2.0, "store": 2.0, "shop": 2.0,
				"retail": 2.5, "restaurant": 2.5, "customers": 2.0, "staff": 1.5,
				"employees": 1.5,
			},
			Phrases: map[string]float64{
				"my business": 4.0, "small business": 4.0, "my store": 4.0,
				"point of sale": 3.0, "guest wifi": 3.0, "background music": 3.0,
			},
			ContextClues: []string{"business", "office", "customers", "storefront", "commercial"},
		},
		"facilities-manager": {
			Keywords: map[string]float64{
				"facility": 3.0, "facilities": 3.0, "campus": 2.5, "warehouse": 2.5,
				"hvac": 2.5, "maintenance": 2.0, "compliance": 2.0, "occupancy": 2.0,
			},
			Phrases: map[string]float64{
				"facilities management": 4.0, "building management": 4.0,
				"access control": 3.0, "square feet": 2.5, "multiple buildings": 4.0,
			},
			ContextClues: []string{"facility", "campus", "warehouse", "building", "commercial"},
		},
	}
}
