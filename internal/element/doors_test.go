package element

import (
	"testing"

	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
	"github.com/stretchr/testify/assert"
)

func TestGenerateDoors(t *testing.T) {
	editor := world.NewEditor()
	node := &osm.Node{X: 10, Z: -3, Tags: map[string]string{"entrance": "yes"}}

	GenerateDoors(editor, node, flat(64))

	assert.Equal(t, block.GrayConcreteID, editor.BlockAt(10, 64, -3))
	assert.Equal(t, block.DarkOakDoorLowerID, editor.BlockAt(10, 65, -3))
	assert.Equal(t, block.DarkOakDoorUpperID, editor.BlockAt(10, 66, -3))
}

func TestGenerateDoorsSkipsUpperLevels(t *testing.T) {
	editor := world.NewEditor()
	node := &osm.Node{X: 0, Z: 0, Tags: map[string]string{"door": "yes", "level": "2"}}

	GenerateDoors(editor, node, flat(64))

	assert.Zero(t, editor.BlockCount(), "Дверь не на уровне земли пропускается")
}

func TestGenerateDoorsRequiresTag(t *testing.T) {
	editor := world.NewEditor()
	node := &osm.Node{X: 0, Z: 0, Tags: map[string]string{"amenity": "bench"}}

	GenerateDoors(editor, node, flat(64))

	assert.Zero(t, editor.BlockCount())
}
