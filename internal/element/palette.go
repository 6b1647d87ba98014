package element

import (
	"math/rand"

	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// Окна не варьируются палитрой
const windowBlock = block.WhiteStainedGlass

// Типы зданий, для которых допустима случайная окраска крыши
var singleDwellingTypes = map[string]bool{
	"yes":                true,
	"house":              true,
	"detached":           true,
	"static_caravan":     true,
	"semidetached_house": true,
	"bungalow":           true,
	"manor":              true,
	"villa":              true,
}

// buildingPalette содержит выбранные блоки одного здания
type buildingPalette struct {
	Corner block.BlockID
	Wall   block.BlockID
	Floor  block.BlockID
}

// resolvePalette выбирает блоки здания по тегам и источнику случайности.
//
// Угловой блок всегда случайный. Стена подбирается по building:colour
// через поиск ближайшего цвета, иначе случайная вариация. Пол/крыша
// подбирается по roof:colour; без тега случайная вариация разрешена
// только частным домам, остальные получают нейтральный блок.
func resolvePalette(way *osm.Way, rng *rand.Rand) buildingPalette {
	corners := block.CornerVariations()
	walls := block.WallVariations()
	floors := block.FloorVariations()

	palette := buildingPalette{
		Corner: corners[rng.Intn(len(corners))],
		Wall:   walls[rng.Intn(len(walls))],
		Floor:  block.LightGrayConcreteID,
	}

	if colour, ok := way.Tag("building:colour"); ok {
		if rgb, ok := block.ParseColorText(colour); ok {
			if nearest, ok := block.FindNearestByColor(rgb, block.WallColorMap()); ok {
				palette.Wall = nearest
			}
		}
	}

	floorResolved := false
	if colour, ok := way.Tag("roof:colour"); ok {
		if rgb, ok := block.ParseColorText(colour); ok {
			if nearest, ok := block.FindNearestByColor(rgb, block.FloorColorMap()); ok {
				palette.Floor = nearest
				floorResolved = true
			}
		}
	}

	if !floorResolved {
		if buildingType, ok := buildingTypeTag(way); ok && singleDwellingTypes[buildingType] {
			palette.Floor = floors[rng.Intn(len(floors))]
		}
	}

	return palette
}

// buildingTypeTag возвращает объявленный тип здания (building или building:part)
func buildingTypeTag(way *osm.Way) (string, bool) {
	if value, ok := way.Tag("building"); ok {
		return value, true
	}
	return way.Tag("building:part")
}
