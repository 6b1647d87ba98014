package element

import (
	"math/rand"
	"time"

	"github.com/annel0/osm-worldgen/internal/config"
	"github.com/annel0/osm-worldgen/internal/geom"
	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// GenerateBuildings превращает контур здания в воксельную структуру.
//
// relationLevels — этажность, разрешённая из объемлющего отношения;
// перекрывает все источники высоты из тегов. Вызов молчаливо завершается
// без записей, когда высота поверхности неразрешима или элемент объявлен
// подземным.
func GenerateBuildings(editor *world.Editor, way *osm.Way, g ground.Ground, gen *config.GenerationConfig, relationLevels *int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generateBuildings(editor, way, g, gen, relationLevels, rng)
}

func generateBuildings(editor *world.Editor, way *osm.Way, g ground.Ground, gen *config.GenerationConfig, relationLevels *int, rng *rand.Rand) {
	scale := gen.GetScale()

	params, ok := deriveParams(way, g, scale, relationLevels)
	if !ok {
		return
	}

	palette := resolvePalette(way, rng)

	if amenity, ok := way.Tag("amenity"); ok && amenity == "shelter" {
		generateShelter(editor, way, params.BaseY, gen)
		return
	}

	if buildingType, ok := way.Tag("building"); ok {
		parkingTag, _ := way.Tag("parking")

		switch {
		case buildingType == "garage":
			params.Height = scaledHeight(2, scale)

		case buildingType == "shed":
			params.Height = scaledHeight(2, scale)
			if covered, _ := way.Tag("covered"); way.HasTag("bicycle_parking") && covered == "yes" {
				generateCoveredShed(editor, way, params.BaseY, gen)
				return
			}

		case buildingType == "parking" || parkingTag == "multi-storey":
			generateParking(editor, way, params, gen)
			return

		case buildingType == "roof":
			generateStandaloneRoof(editor, way, params.BaseY, gen)
			return

		case buildingType == "apartments":
			if params.heightUntouched() {
				params.Height = scaledHeight(15, scale)
			}

		case buildingType == "hospital":
			if params.heightUntouched() {
				params.Height = scaledHeight(23, scale)
			}

		case buildingType == "bridge":
			generateBridge(editor, way, g, gen.FillTimeout())
			return
		}
	}

	generateGenericBuilding(editor, way, params, palette, gen)
}

// generateGenericBuilding выполняет общий путь: стены с окнами и углами
// вдоль контура, затем пол, межэтажные перекрытия и потолок по заливке
// внутренней области.
func generateGenericBuilding(editor *world.Editor, way *osm.Way, params buildingParams, palette buildingPalette, gen *config.GenerationConfig) {
	cornerColumns := nodeColumnSet(way)

	var previous *vec.Vec2
	currentBuilding := make([]vec.Vec2, 0)

	for i := range way.Nodes {
		node := &way.Nodes[i]
		column := node.XZ()

		if previous != nil {
			points := geom.BresenhamLine(
				vec.FromVec2(*previous, params.StartY),
				vec.FromVec2(column, params.StartY),
			)

			for _, p := range points {
				for h := params.StartY + 1; h <= params.StartY+params.Height; h++ {
					if cornerColumns[vec.Vec2{X: p.X, Z: p.Z}] {
						editor.SetBlock(palette.Corner, p.X, h, p.Z, nil, nil)
					} else if h > params.StartY+1 && h%storyHeight != 0 && (p.X+p.Z)%6 < 3 {
						// Окна в стенах через интервалы, вне границ этажей
						editor.SetBlock(windowBlock, p.X, h, p.Z, nil, nil)
					} else {
						editor.SetBlock(palette.Wall, p.X, h, p.Z, nil, nil)
					}
				}

				editor.SetBlock(block.CobblestoneBlockID, p.X, params.StartY+params.Height+1, p.Z, nil, nil)

				if gen.Winter {
					editor.SetBlock(block.SnowLayerBlockID, p.X, params.StartY+params.Height+2, p.Z, nil, nil)
				}

				currentBuilding = append(currentBuilding, vec.Vec2{X: p.X, Z: p.Z})
			}
		}

		previous = &vec.Vec2{X: column.X, Z: column.Z}
	}

	if len(currentBuilding) == 0 {
		return
	}

	floorArea := geom.FillArea(way.Columns(), gen.FillTimeout())
	processed := make(map[vec.Vec2]struct{}, len(floorArea))

	for _, pt := range floorArea {
		if _, seen := processed[pt]; seen {
			continue
		}
		processed[pt] = struct{}{}

		// Пол на стартовой высоте
		editor.SetBlock(palette.Floor, pt.X, params.StartY, pt.Z, nil, nil)

		if params.Height > storyHeight {
			// Межэтажные перекрытия с периодическими светильниками
			for h := params.StartY + storyHeight + 2; h < params.StartY+params.Height; h += storyHeight {
				if pt.X%6 == 0 && pt.Z%6 == 0 {
					editor.SetBlock(block.GlowstoneBlockID, pt.X, h, pt.Z, nil, nil)
				} else {
					editor.SetBlock(palette.Floor, pt.X, h, pt.Z, nil, nil)
				}
			}
		} else if pt.X%6 == 0 && pt.Z%6 == 0 {
			editor.SetBlock(block.GlowstoneBlockID, pt.X, params.StartY+params.Height, pt.Z, nil, nil)
		}

		// Потолок
		editor.SetBlock(palette.Floor, pt.X, params.StartY+params.Height+1, pt.Z, nil, nil)

		if gen.Winter {
			editor.SetBlock(block.SnowLayerBlockID, pt.X, params.StartY+params.Height+2, pt.Z, nil, nil)
		}
	}
}

// nodeColumnSet возвращает множество колонок узлов контура.
// Колонка из этого множества считается углом здания.
func nodeColumnSet(way *osm.Way) map[vec.Vec2]bool {
	columns := make(map[vec.Vec2]bool, len(way.Nodes))
	for i := range way.Nodes {
		columns[way.Nodes[i].XZ()] = true
	}
	return columns
}
