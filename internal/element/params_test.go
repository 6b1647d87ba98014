package element

import (
	"testing"

	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareWay возвращает квадратный контур 4x4 с указанными тегами
func squareWay(tags map[string]string) *osm.Way {
	return &osm.Way{
		ID: 1,
		Nodes: []osm.Node{
			{X: 0, Z: 0},
			{X: 4, Z: 0},
			{X: 4, Z: 4},
			{X: 0, Z: 4},
		},
		Tags: tags,
	}
}

func flat(surface int) ground.Ground {
	return &ground.FlatGround{Surface: surface}
}

func TestDeriveParamsDefaults(t *testing.T) {
	params, ok := deriveParams(squareWay(nil), flat(64), 1.0, nil)

	require.True(t, ok)
	assert.Equal(t, 64, params.BaseY)
	assert.Equal(t, 64, params.StartY, "Без building:min_level стены начинаются от поверхности")
	assert.Equal(t, 6, params.Height, "Высота по умолчанию при scale=1.0")
	assert.True(t, params.heightUntouched())
}

func TestDeriveParamsMinLevel(t *testing.T) {
	params, ok := deriveParams(squareWay(map[string]string{
		"building:min_level": "2",
	}), flat(64), 1.0, nil)

	require.True(t, ok)
	assert.Equal(t, 64+2*4, params.StartY, "Стартовая высота учитывает минимальный этаж")

	// Неразборчивое значение трактуется как 0
	params, ok = deriveParams(squareWay(map[string]string{
		"building:min_level": "мусор",
	}), flat(64), 1.0, nil)
	require.True(t, ok)
	assert.Equal(t, 64, params.StartY)
}

func TestDeriveParamsLevels(t *testing.T) {
	params, ok := deriveParams(squareWay(map[string]string{
		"building:levels": "2",
	}), flat(64), 1.0, nil)

	require.True(t, ok)
	assert.Equal(t, 10, params.Height, "2 этажа: 2*4+2")
	assert.False(t, params.heightUntouched())

	// Этажность за вычетом минимального уровня
	params, ok = deriveParams(squareWay(map[string]string{
		"building:levels":    "3",
		"building:min_level": "1",
	}), flat(64), 1.0, nil)
	require.True(t, ok)
	assert.Equal(t, 10, params.Height, "3-1 этажа: 2*4+2")

	// Этажность ниже минимального уровня не перекрывает значение по умолчанию
	params, ok = deriveParams(squareWay(map[string]string{
		"building:levels":    "1",
		"building:min_level": "2",
	}), flat(64), 1.0, nil)
	require.True(t, ok)
	assert.Equal(t, params.defaultHeight, params.Height)
}

func TestDeriveParamsHeightTag(t *testing.T) {
	bare, ok := deriveParams(squareWay(map[string]string{"height": "12"}), flat(64), 1.0, nil)
	require.True(t, ok)

	suffixed, ok := deriveParams(squareWay(map[string]string{"height": "12m"}), flat(64), 1.0, nil)
	require.True(t, ok)

	assert.Equal(t, 12, bare.Height)
	assert.Equal(t, bare.Height, suffixed.Height, "Суффикс единицы измерения не влияет на разбор")

	// Тег height перекрывает building:levels
	params, ok := deriveParams(squareWay(map[string]string{
		"building:levels": "5",
		"height":          "7m",
	}), flat(64), 1.0, nil)
	require.True(t, ok)
	assert.Equal(t, 7, params.Height)

	// Неразборчивый height оставляет предыдущий источник
	params, ok = deriveParams(squareWay(map[string]string{
		"building:levels": "2",
		"height":          "высокое",
	}), flat(64), 1.0, nil)
	require.True(t, ok)
	assert.Equal(t, 10, params.Height)
}

func TestDeriveParamsRelationOverride(t *testing.T) {
	levels := 1
	params, ok := deriveParams(squareWay(map[string]string{
		"building:levels": "5",
		"height":          "30",
	}), flat(64), 1.0, &levels)

	require.True(t, ok)
	assert.Equal(t, 6, params.Height, "Этажность отношения перекрывает все теги: 1*4+2")
}

func TestDeriveParamsHeightFloor(t *testing.T) {
	// Высота никогда не опускается ниже 3
	cases := []map[string]string{
		{"height": "1"},
		{"height": "0.5m"},
		{"building:levels": "1"},
		nil,
	}
	for _, tags := range cases {
		params, ok := deriveParams(squareWay(tags), flat(64), 0.1, nil)
		require.True(t, ok)
		assert.GreaterOrEqual(t, params.Height, 3, "теги: %v", tags)
	}
}

func TestDeriveParamsUndergroundRejected(t *testing.T) {
	_, ok := deriveParams(squareWay(map[string]string{"layer": "-1"}), flat(64), 1.0, nil)
	assert.False(t, ok, "Отрицательный layer отклоняет здание")

	_, ok = deriveParams(squareWay(map[string]string{"level": "-2"}), flat(64), 1.0, nil)
	assert.False(t, ok, "Отрицательный level отклоняет здание")

	// Неразборчивые значения не считаются отрицательными
	_, ok = deriveParams(squareWay(map[string]string{"layer": "подвал"}), flat(64), 1.0, nil)
	assert.True(t, ok)
}

func TestDeriveParamsUnresolvableGround(t *testing.T) {
	empty := &osm.Way{ID: 2}
	_, ok := deriveParams(empty, flat(64), 1.0, nil)
	assert.False(t, ok, "Контур без узлов не имеет разрешимой высоты поверхности")
}
