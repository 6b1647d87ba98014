package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/annel0/osm-worldgen/internal/vec"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/annel0/osm-worldgen/internal/world/block"
	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
)

// WorldStorage представляет собой хранилище сгенерированного мира
type WorldStorage struct {
	db           *badger.DB
	dbPath       string
	mutex        sync.RWMutex
	isReady      bool
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// ChunkSnapshot содержит вокселы одного чанка для сохранения
type ChunkSnapshot struct {
	Coords vec.Vec2              `json:"coords"`
	Blocks map[string]BlockEntry `json:"blocks"` // Ключ - упакованные координаты "x:y:z"
}

// BlockEntry содержит данные одного воксела
type BlockEntry struct {
	ID      block.BlockID  `json:"id"`
	Payload block.Metadata `json:"payload,omitempty"`
}

// NewWorldStorage создает новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать компрессор: %w", err)
	}

	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать декомпрессор: %w", err)
	}

	return &WorldStorage{
		db:           db,
		dbPath:       dbPath,
		isReady:      true,
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	return ws.db.Close()
}

// SaveChunk сохраняет вокселы чанка
func (ws *WorldStorage) SaveChunk(chunk *world.Chunk) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	// Если нет изменений, пропускаем
	if chunk.ChangeCounter == 0 {
		return nil
	}

	snapshot := ChunkSnapshot{
		Coords: chunk.Coords,
		Blocks: make(map[string]BlockEntry, len(chunk.Blocks)),
	}

	for local, id := range chunk.Blocks {
		key := fmt.Sprintf("%d:%d:%d", local.X, local.Y, local.Z)
		snapshot.Blocks[key] = BlockEntry{
			ID:      id,
			Payload: chunk.GetBlockMetadata(local),
		}
	}

	// Сериализуем снимок в JSON и сжимаем
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("ошибка сериализации чанка: %w", err)
	}
	compressed := ws.compressor.EncodeAll(data, nil)

	// Сохраняем в BadgerDB
	key := fmt.Sprintf("chunk:%d:%d", snapshot.Coords.X, snapshot.Coords.Z)
	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), compressed)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}

	chunk.ClearChanges()
	return nil
}

// LoadChunk загружает снимок чанка
func (ws *WorldStorage) LoadChunk(coords vec.Vec2) (*ChunkSnapshot, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	key := fmt.Sprintf("chunk:%d:%d", coords.X, coords.Z)

	var snapshot *ChunkSnapshot
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil // Чанк не сохранялся
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			data, err := ws.decompressor.DecodeAll(val, nil)
			if err != nil {
				return fmt.Errorf("ошибка распаковки чанка: %w", err)
			}

			snapshot = &ChunkSnapshot{}
			return json.Unmarshal(data, snapshot)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки из BadgerDB: %w", err)
	}

	return snapshot, nil
}

// SaveAll сохраняет все затронутые чанки редактора
func (ws *WorldStorage) SaveAll(editor *world.Editor) error {
	for _, chunk := range editor.Chunks() {
		if err := ws.SaveChunk(chunk); err != nil {
			return fmt.Errorf("ошибка сохранения чанка %d:%d: %w", chunk.Coords.X, chunk.Coords.Z, err)
		}
	}
	return nil
}
