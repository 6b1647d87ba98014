package element

import (
	"math/rand"
	"testing"

	"github.com/annel0/osm-worldgen/internal/world/block"
	"github.com/stretchr/testify/assert"
)

func TestResolvePaletteByColourTags(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	way := squareWay(map[string]string{
		"building":        "office",
		"building:colour": "#373a3e", // серый бетон
		"roof:colour":     "#8e2121", // красный бетон
	})

	palette := resolvePalette(way, rng)

	assert.Equal(t, block.GrayConcreteID, palette.Wall)
	assert.Equal(t, block.RedConcreteID, palette.Floor)
}

func TestResolvePaletteDefaults(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	// Не частный дом без цветовых тегов: нейтральная крыша
	palette := resolvePalette(squareWay(map[string]string{"building": "office"}), rng)
	assert.Equal(t, block.LightGrayConcreteID, palette.Floor)

	walls := blockSet(block.WallVariations())
	corners := blockSet(block.CornerVariations())
	assert.True(t, walls[palette.Wall], "Стена без тега выбирается из каталога вариаций")
	assert.True(t, corners[palette.Corner], "Угол всегда выбирается из каталога вариаций")
}

func TestResolvePaletteSingleDwelling(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	floors := blockSet(block.FloorVariations())

	// Частные дома получают случайную крышу из каталога
	for _, buildingType := range []string{"house", "detached", "bungalow", "yes"} {
		palette := resolvePalette(squareWay(map[string]string{"building": buildingType}), rng)
		assert.True(t, floors[palette.Floor], "building=%s", buildingType)
	}
}

func TestResolvePaletteGarbageColour(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	// Неразборчивый цвет трактуется как отсутствие тега
	palette := resolvePalette(squareWay(map[string]string{
		"building":        "office",
		"building:colour": "что-то",
	}), rng)

	walls := blockSet(block.WallVariations())
	assert.True(t, walls[palette.Wall])
	assert.Equal(t, block.LightGrayConcreteID, palette.Floor)
}

func TestResolvePaletteBuildingPart(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	floors := blockSet(block.FloorVariations())

	// Тип берётся и из building:part
	palette := resolvePalette(squareWay(map[string]string{"building:part": "house"}), rng)
	assert.True(t, floors[palette.Floor])
}
