package impl

import (
	"marketnav/config"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"
)

const (
	defaultWalkingSpeedMps         = 1.4
	defaultIndoorSpeedMps          = 1.0
	defaultCurrentShopRadiusMeters = 10.0
)

// navigationSettings is the resolved navigation tuning with defaults applied
type navigationSettings struct {
	walkingSpeedMps         float64
	indoorSpeedMps          float64
	currentShopRadiusMeters float64
	marketSearchRadiusKm    float64
	gridResolution          int
}

func newNavigationSettings(cfg *config.Config) navigationSettings {
	settings := navigationSettings{
		walkingSpeedMps:         defaultWalkingSpeedMps,
		indoorSpeedMps:          defaultIndoorSpeedMps,
		currentShopRadiusMeters: defaultCurrentShopRadiusMeters,
		marketSearchRadiusKm:    usecase.DefaultMarketSearchKm,
		gridResolution:          geo.DefaultGridResolution,
	}
	if cfg == nil || cfg.Navigation == nil {
		return settings
	}

	nav := cfg.Navigation
	if nav.WalkingSpeedMps > 0 {
		settings.walkingSpeedMps = nav.WalkingSpeedMps
	}
	if nav.IndoorSpeedMps > 0 {
		settings.indoorSpeedMps = nav.IndoorSpeedMps
	}
	if nav.CurrentShopRadiusMeters > 0 {
		settings.currentShopRadiusMeters = nav.CurrentShopRadiusMeters
	}
	if nav.MarketSearchRadiusKm > 0 {
		settings.marketSearchRadiusKm = nav.MarketSearchRadiusKm
	}
	if nav.ShopIndexResolution > 0 {
		settings.gridResolution = nav.ShopIndexResolution
	}

	return settings
}

// etaSeconds truncates like the mobile clients expect
func etaSeconds(distanceMeters, speedMps float64) int {
	return int(distanceMeters / speedMps)
}
