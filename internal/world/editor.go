package world

import (
	"sync"

	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world/block"
)

// Editor принимает записи вокселов от генерации и хранит их по чанкам.
// Каждая запись применяется независимо; поздняя запись в ту же координату
// перекрывает раннюю. Координаты не ограничены — запись в любую точку
// мира безопасна.
type Editor struct {
	mu     sync.RWMutex
	chunks map[vec.Vec2]*Chunk
}

// NewEditor создаёт пустой редактор мира
func NewEditor() *Editor {
	return &Editor{
		chunks: make(map[vec.Vec2]*Chunk),
	}
}

// SetBlock записывает один воксель.
//
// Пустой воксель заполняется всегда. Занятый воксель перезаписывается,
// только если overwrite == nil или текущий блок входит в overwrite.
// extra — необязательное дополнительное состояние размещения.
func (e *Editor) SetBlock(id block.BlockID, x, y, z int, overwrite []block.BlockID, extra block.Metadata) {
	column := vec.Vec2{X: x, Z: z}
	local := vec.Vec3{X: x & 0xF, Y: y, Z: z & 0xF}

	e.mu.Lock()
	defer e.mu.Unlock()

	chunk := e.chunkLocked(column.ToChunkCoords())

	if current, occupied := chunk.Blocks[local]; occupied {
		if overwrite != nil && !containsBlock(overwrite, current) {
			blocksSkipped.Inc()
			return
		}
	}

	chunk.SetBlock(local, id)
	chunk.SetBlockMetadata(local, extra)
	blocksPlaced.Inc()
}

// BlockAt возвращает блок в указанной координате мира
func (e *Editor) BlockAt(x, y, z int) block.BlockID {
	column := vec.Vec2{X: x, Z: z}
	local := vec.Vec3{X: x & 0xF, Y: y, Z: z & 0xF}

	e.mu.RLock()
	defer e.mu.RUnlock()

	chunk, exists := e.chunks[column.ToChunkCoords()]
	if !exists {
		return block.AirBlockID
	}
	return chunk.GetBlock(local)
}

// BlockCount возвращает количество записанных вокселов
func (e *Editor) BlockCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	count := 0
	for _, chunk := range e.chunks {
		count += len(chunk.Blocks)
	}
	return count
}

// Chunks возвращает все затронутые чанки (для сохранения)
func (e *Editor) Chunks() []*Chunk {
	e.mu.RLock()
	defer e.mu.RUnlock()

	chunks := make([]*Chunk, 0, len(e.chunks))
	for _, chunk := range e.chunks {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// chunkLocked возвращает чанк, создавая его при необходимости.
// Вызывается только под блокировкой записи.
func (e *Editor) chunkLocked(coords vec.Vec2) *Chunk {
	if chunk, exists := e.chunks[coords]; exists {
		return chunk
	}

	chunk := NewChunk(coords)
	e.chunks[coords] = chunk
	return chunk
}

func containsBlock(list []block.BlockID, id block.BlockID) bool {
	for _, candidate := range list {
		if candidate == id {
			return true
		}
	}
	return false
}
