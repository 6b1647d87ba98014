package world

import (
	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// Chunk хранит вокселы одного столба мира 16x16 по X/Z.
// Хранение разреженное: отсутствующий воксель считается воздухом.
type Chunk struct {
	Coords     vec.Vec2                    // Координаты чанка (X>>4, Z>>4)
	Blocks     map[vec.Vec3]block.BlockID  // Локальные координаты -> блок
	Metadata3D map[vec.Vec3]block.Metadata // Дополнительное состояние вокселов

	// Счётчик изменений с момента последнего сохранения
	ChangeCounter int
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	return &Chunk{
		Coords:     coords,
		Blocks:     make(map[vec.Vec3]block.BlockID),
		Metadata3D: make(map[vec.Vec3]block.Metadata),
	}
}

// GetBlock возвращает блок в локальной позиции чанка
func (c *Chunk) GetBlock(local vec.Vec3) block.BlockID {
	if id, exists := c.Blocks[local]; exists {
		return id
	}
	return block.AirBlockID
}

// SetBlock устанавливает блок в локальной позиции чанка.
// Повторная запись в ту же позицию перекрывает предыдущую.
func (c *Chunk) SetBlock(local vec.Vec3, id block.BlockID) {
	c.Blocks[local] = id
	c.ChangeCounter++
}

// SetBlockMetadata сохраняет дополнительное состояние воксела
func (c *Chunk) SetBlockMetadata(local vec.Vec3, metadata block.Metadata) {
	if len(metadata) == 0 {
		return
	}
	c.Metadata3D[local] = metadata
}

// GetBlockMetadata возвращает дополнительное состояние воксела
func (c *Chunk) GetBlockMetadata(local vec.Vec3) block.Metadata {
	return c.Metadata3D[local]
}

// ClearChanges сбрасывает счётчик изменений после сохранения
func (c *Chunk) ClearChanges() {
	c.ChangeCounter = 0
}
