package element

import (
	"github.com/annel0/osm-worldgen/internal/config"
	"github.com/annel0/osm-worldgen/internal/geom"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// Высота столбов навесов и крытых парковок
const postHeight = 4

// generateShelter строит навес: столбы в узлах контура и плоская крыша
// из плит над всей площадью. Стены и окна не возводятся.
func generateShelter(editor *world.Editor, way *osm.Way, baseY int, gen *config.GenerationConfig) {
	roofBlock := block.StoneBrickSlabID
	roofY := baseY + postHeight + 1

	// Столбы с плитой наверху в каждом узле контура
	for i := range way.Nodes {
		node := &way.Nodes[i]
		for dy := 1; dy <= postHeight; dy++ {
			editor.SetBlock(block.OakFenceBlockID, node.X, baseY+dy, node.Z, nil, nil)
		}
		editor.SetBlock(roofBlock, node.X, roofY, node.Z, nil, nil)
	}

	// Крыша над внутренней областью
	roofArea := geom.FillArea(way.Columns(), gen.FillTimeout())
	for _, pt := range roofArea {
		editor.SetBlock(roofBlock, pt.X, roofY, pt.Z, nil, nil)
	}
}

// generateCoveredShed строит крытую велопарковку: дощатый пол, столбы
// в узлах и крыша из плит.
func generateCoveredShed(editor *world.Editor, way *osm.Way, baseY int, gen *config.GenerationConfig) {
	groundBlock := block.OakPlanksBlockID
	roofBlock := block.SmoothStoneSlabID
	roofY := baseY + postHeight + 1

	floorArea := geom.FillArea(way.Columns(), gen.FillTimeout())

	// Пол
	for _, pt := range floorArea {
		editor.SetBlock(groundBlock, pt.X, baseY, pt.Z, nil, nil)
	}

	// Столбы с плитой наверху в каждом узле контура
	for i := range way.Nodes {
		node := &way.Nodes[i]
		for dy := 1; dy <= postHeight; dy++ {
			editor.SetBlock(block.OakFenceBlockID, node.X, baseY+dy, node.Z, nil, nil)
		}
		editor.SetBlock(roofBlock, node.X, roofY, node.Z, nil, nil)
	}

	// Крыша
	for _, pt := range floorArea {
		editor.SetBlock(roofBlock, pt.X, roofY, pt.Z, nil, nil)
	}
}

// generateParking строит многоэтажную парковку: кирпичные стены и
// перекрытия на каждом этаже, затем декоративная обводка контура.
func generateParking(editor *world.Editor, way *osm.Way, params buildingParams, gen *config.GenerationConfig) {
	if params.Height < 16 {
		params.Height = 16
	}

	floorArea := geom.FillArea(way.Columns(), gen.FillTimeout())
	groundLevel := params.BaseY

	for level := 0; level <= params.Height/storyHeight; level++ {
		currentLevel := groundLevel + level*storyHeight

		// Стены этажа в узлах контура
		for i := range way.Nodes {
			node := &way.Nodes[i]
			for y := currentLevel + 1; y <= currentLevel+storyHeight; y++ {
				editor.SetBlock(block.StoneBricksBlockID, node.X, y, node.Z, nil, nil)
			}
		}

		// Перекрытие этажа
		for _, pt := range floorArea {
			if level == 0 {
				editor.SetBlock(block.SmoothStoneBlockID, pt.X, currentLevel, pt.Z, nil, nil)
			} else {
				editor.SetBlock(block.CobblestoneBlockID, pt.X, currentLevel, pt.Z, nil, nil)
			}
		}
	}

	// Обводка контура каждого этажа поверх заливки
	for level := 0; level <= params.Height/storyHeight; level++ {
		currentLevel := groundLevel + level*storyHeight

		var previous *vec.Vec2
		for i := range way.Nodes {
			column := way.Nodes[i].XZ()

			if previous != nil {
				points := geom.BresenhamLine(
					vec.FromVec2(*previous, currentLevel),
					vec.FromVec2(column, currentLevel),
				)
				for _, p := range points {
					// Кромка перекрытия; заменяем только заливку этажа
					editor.SetBlock(block.SmoothStoneBlockID, p.X, currentLevel, p.Z,
						[]block.BlockID{block.CobblestoneBlockID, block.CobblestoneWallID}, nil)
					editor.SetBlock(block.StoneBrickSlabID, p.X, currentLevel+2, p.Z, nil, nil)
					if p.X%2 == 0 {
						editor.SetBlock(block.CobblestoneWallID, p.X, currentLevel+1, p.Z, nil, nil)
					}
				}
			}

			previous = &vec.Vec2{X: column.X, Z: column.Z}
		}
	}
}

// generateStandaloneRoof строит отдельно стоящую крышу: плиты по контуру
// и внутренней области на фиксированной высоте, решётчатые опоры под
// узлами контура.
func generateStandaloneRoof(editor *world.Editor, way *osm.Way, baseY int, gen *config.GenerationConfig) {
	roofY := baseY + 5

	var previous *vec.Vec2
	for i := range way.Nodes {
		node := &way.Nodes[i]
		column := node.XZ()

		if previous != nil {
			points := geom.BresenhamLine(
				vec.FromVec2(*previous, roofY),
				vec.FromVec2(column, roofY),
			)
			for _, p := range points {
				editor.SetBlock(block.StoneBrickSlabID, p.X, roofY, p.Z, nil, nil)
			}
		}

		// Опора под узлом контура
		for y := baseY + 1; y <= roofY-1; y++ {
			editor.SetBlock(block.CobblestoneWallID, node.X, y, node.Z, nil, nil)
		}

		previous = &vec.Vec2{X: column.X, Z: column.Z}
	}

	roofArea := geom.FillArea(way.Columns(), gen.FillTimeout())
	for _, pt := range roofArea {
		editor.SetBlock(block.StoneBrickSlabID, pt.X, roofY, pt.Z, nil, nil)
	}
}
