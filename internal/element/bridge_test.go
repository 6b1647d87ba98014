package element

import (
	"testing"

	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slopedGround моделирует наклонный рельеф: высота растёт вдоль X
type slopedGround struct{}

func (g *slopedGround) Level(p vec.Vec2) int {
	return 60 + p.X
}

func (g *slopedGround) MinLevel(points []vec.Vec2) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	min := g.Level(points[0])
	for _, p := range points[1:] {
		if level := g.Level(p); level < min {
			min = level
		}
	}
	return min, true
}

func TestGenerateBridgeFollowsTerrain(t *testing.T) {
	editor := world.NewEditor()
	way := squareWay(map[string]string{
		"building": "bridge",
		"level":    "1",
	})

	GenerateBuildings(editor, way, &slopedGround{}, testGenConfig(), nil)

	require.NotZero(t, editor.BlockCount())

	// Настил повторяет рельеф: смещение level*3+1 = 4 поверх локальной высоты
	assert.Equal(t, block.StoneBlockID, editor.BlockAt(1, 60+1+4, 1),
		"Колонка x=1 берёт собственную высоту рельефа")
	assert.Equal(t, block.StoneBlockID, editor.BlockAt(3, 60+3+4, 1),
		"Колонка x=3 берёт собственную высоту рельефа")

	// Перила вдоль ребра на высоте конечного узла
	assert.Equal(t, block.StoneBricksBlockID, editor.BlockAt(2, 60+4+4, 0))
	assert.Equal(t, block.StoneBricksBlockID, editor.BlockAt(2, 60+4+4+1, 0))
}

func TestGenerateBridgeWithoutLevelTag(t *testing.T) {
	editor := world.NewEditor()
	way := squareWay(map[string]string{"building": "bridge"})

	GenerateBuildings(editor, way, &slopedGround{}, testGenConfig(), nil)

	// Без тега level настил лежит прямо на локальной высоте поверхности
	assert.Equal(t, block.StoneBlockID, editor.BlockAt(1, 61, 1))
	assert.Equal(t, block.StoneBlockID, editor.BlockAt(3, 63, 1))
}
