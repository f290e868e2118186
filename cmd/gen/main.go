// Command gen generates type-safe gorm query builders for the navigation tables.
package main

import (
	"marketnav/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MarketModel{},
		model.ShopModel{},
		model.GeofenceZoneModel{},
		model.NavigationRouteModel{},
		model.NavigationSessionModel{},
		model.UserLocationModel{},
		model.UserModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
