package element

import (
	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// GenerateDoors размещает дверь в узле с тегом door или entrance.
// Двери не на уровне земли (level != 0) пропускаются.
func GenerateDoors(editor *world.Editor, node *osm.Node, g ground.Ground) {
	if _, hasDoor := node.Tags["door"]; !hasDoor {
		if _, hasEntrance := node.Tags["entrance"]; !hasEntrance {
			return
		}
	}

	if levelStr, ok := node.Tags["level"]; ok {
		if level, ok := parseIntValue(levelStr); ok && level != 0 {
			return
		}
	}

	groundLevel := g.Level(node.XZ())

	editor.SetBlock(block.GrayConcreteID, node.X, groundLevel, node.Z, nil, nil)
	editor.SetBlock(block.DarkOakDoorLowerID, node.X, groundLevel+1, node.Z, nil, nil)
	editor.SetBlock(block.DarkOakDoorUpperID, node.X, groundLevel+2, node.Z, nil, nil)
}
