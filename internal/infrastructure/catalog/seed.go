package catalog

import "github.com/cornndawwg/icatalyst-production-sub001/internal/domain"

// SeedItems is the built-in catalog used when no seed file is configured
// and the store is empty. Prices are per-category package prices at each
// tier; ecosystem tags mark hub-bound lines that cannot mix.
func SeedItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		// Security
		{ID: "sec-001", Name: "Ring Alarm Pro Package", Category: "security", Brand: "Ring",
			BasePrice: 1500, GoodTierPrice: 1800, BetterTierPrice: 3600, BestTierPrice: 6000},
		{ID: "sec-002", Name: "Axis Surveillance Suite", Category: "security", Brand: "Axis",
			BasePrice: 2500, GoodTierPrice: 2800, BetterTierPrice: 5200, BestTierPrice: 9500},
		{ID: "sec-003", Name: "Honeywell ProSeries Security", Category: "security", Brand: "Honeywell",
			BasePrice: 2000, GoodTierPrice: 2200, BetterTierPrice: 4400, BestTierPrice: 8200},

		// Lighting
		{ID: "lit-001", Name: "Lutron Caseta Lighting", Category: "lighting", Brand: "Lutron",
			BasePrice: 1400, GoodTierPrice: 1600, BetterTierPrice: 3800, BestTierPrice: 7200},
		{ID: "lit-002", Name: "Control4 Smart Lighting", Category: "lighting", Brand: "Control4",
			BasePrice: 2100, GoodTierPrice: 2400, BetterTierPrice: 4600, BestTierPrice: 8800,
			CompatibilityTags: []string{"ecosystem:control4"}},
		{ID: "lit-003", Name: "Philips Hue Whole-Zone", Category: "lighting", Brand: "Philips",
			BasePrice: 800, GoodTierPrice: 900, BetterTierPrice: 2200, BestTierPrice: 4500},

		// Audio-video
		{ID: "av-001", Name: "Sonos Multi-Room Audio", Category: "audio-video", Brand: "Sonos",
			BasePrice: 2200, GoodTierPrice: 2500, BetterTierPrice: 5400, BestTierPrice: 9800},
		{ID: "av-002", Name: "Crestron Media Experience", Category: "audio-video", Brand: "Crestron",
			BasePrice: 4200, GoodTierPrice: 4800, BetterTierPrice: 9500, BestTierPrice: 18500,
			CompatibilityTags: []string{"ecosystem:crestron"}},
		{ID: "av-003", Name: "Samsung Commercial Displays", Category: "audio-video", Brand: "Samsung",
			BasePrice: 1800, GoodTierPrice: 2000, BetterTierPrice: 4200, BestTierPrice: 7800},

		// Networking
		{ID: "net-001", Name: "Ubiquiti UniFi Network", Category: "networking", Brand: "Ubiquiti",
			BasePrice: 1000, GoodTierPrice: 1200, BetterTierPrice: 2800, BestTierPrice: 5600},
		{ID: "net-002", Name: "Cisco Meraki Network", Category: "networking", Brand: "Cisco",
			BasePrice: 2300, GoodTierPrice: 2600, BetterTierPrice: 5200, BestTierPrice: 9800},

		// Climate
		{ID: "cli-001", Name: "Ecobee Smart Climate", Category: "climate", Brand: "Ecobee",
			BasePrice: 700, GoodTierPrice: 800, BetterTierPrice: 1900, BestTierPrice: 3600},
		{ID: "cli-002", Name: "Honeywell Commercial HVAC Controls", Category: "climate", Brand: "Honeywell",
			BasePrice: 2100, GoodTierPrice: 2400, BetterTierPrice: 5200, BestTierPrice: 9600},

		// Access control
		{ID: "acc-001", Name: "Honeywell Access Control", Category: "access-control", Brand: "Honeywell",
			BasePrice: 1900, GoodTierPrice: 2100, BetterTierPrice: 4300, BestTierPrice: 8100},
		{ID: "acc-002", Name: "HID Mobile Access", Category: "access-control", Brand: "HID",
			BasePrice: 2500, GoodTierPrice: 2800, BetterTierPrice: 5600, BestTierPrice: 10500},

		// Conferencing
		{ID: "con-001", Name: "Logitech Room Solutions", Category: "conferencing", Brand: "Logitech",
			BasePrice: 1200, GoodTierPrice: 1400, BetterTierPrice: 3200, BestTierPrice: 6400},
		{ID: "con-002", Name: "Poly Conference Suite", Category: "conferencing", Brand: "Poly",
			BasePrice: 2000, GoodTierPrice: 2200, BetterTierPrice: 4800, BestTierPrice: 9200},
	}
}
