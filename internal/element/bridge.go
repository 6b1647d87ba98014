package element

import (
	"time"

	"github.com/annel0/osm-worldgen/internal/geom"
	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// generateBridge строит мост, повторяющий рельеф вдоль пролёта.
//
// Высота вычисляется для каждой колонки отдельно: поверхность под ней
// плюс смещение из тега level, когда тот разбирается. Перила идут вдоль
// рёбер контура, настил заливается по внутренней области.
func generateBridge(editor *world.Editor, way *osm.Way, g ground.Ground, fillTimeout time.Duration) {
	floorBlock := block.StoneBlockID
	railingBlock := block.StoneBricksBlockID

	var previous *vec.Vec2
	for i := range way.Nodes {
		node := &way.Nodes[i]
		column := node.XZ()
		bridgeLevel := bridgeLevelAt(way, g, column)

		if previous != nil {
			points := geom.BresenhamLine(
				vec.FromVec2(*previous, bridgeLevel),
				vec.FromVec2(column, bridgeLevel),
			)
			for _, p := range points {
				editor.SetBlock(railingBlock, p.X, p.Y+1, p.Z, nil, nil)
				editor.SetBlock(railingBlock, p.X, p.Y, p.Z, nil, nil)
			}
		}

		previous = &vec.Vec2{X: column.X, Z: column.Z}
	}

	// Настил: каждая колонка берёт свою локальную высоту рельефа
	bridgeArea := geom.FillArea(way.Columns(), fillTimeout)
	for _, pt := range bridgeArea {
		editor.SetBlock(floorBlock, pt.X, bridgeLevelAt(way, g, pt), pt.Z, nil, nil)
	}
}

// bridgeLevelAt возвращает высоту моста над указанной колонкой
func bridgeLevelAt(way *osm.Way, g ground.Ground, column vec.Vec2) int {
	level := g.Level(column)

	if levelStr, ok := way.Tag("level"); ok {
		if declared, ok := parseIntValue(levelStr); ok {
			level += declared*3 + 1
		}
	}

	return level
}
