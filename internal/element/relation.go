package element

import (
	"github.com/annel0/osm-worldgen/internal/config"
	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/world"
)

// Этажность отношения, когда тег building:levels отсутствует
const defaultRelationLevels = 2

// GenerateBuildingFromRelation строит здание из отношения, делегируя
// генерацию каждому внешнему контуру. Этажность разрешается один раз из
// тегов отношения и передаётся контурам как внешнее переопределение.
// Внутренние контуры (дворы) не вычитаются.
func GenerateBuildingFromRelation(editor *world.Editor, relation *osm.Relation, g ground.Ground, gen *config.GenerationConfig) {
	levels := defaultRelationLevels
	if levelsStr, ok := relation.Tag("building:levels"); ok {
		if parsed, ok := parseIntValue(levelsStr); ok {
			levels = parsed
		}
	}

	for i := range relation.Members {
		member := &relation.Members[i]
		if member.Role != osm.RoleOuter {
			continue
		}
		GenerateBuildings(editor, &member.Way, g, gen, &levels)
	}
}
