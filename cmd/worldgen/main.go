package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/annel0/osm-worldgen/internal/config"
	"github.com/annel0/osm-worldgen/internal/element"
	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/logging"
	"github.com/annel0/osm-worldgen/internal/osm"
	"github.com/annel0/osm-worldgen/internal/storage"
	"github.com/annel0/osm-worldgen/internal/world"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	inputPath := flag.String("input", "elements.json", "путь к файлу элементов")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("worldgen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	sessionID := uuid.New().String()
	logging.Info("🌍 Запуск генерации мира, сессия %s", sessionID)

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	logging.Info("⚙️ Конфигурация: scale=%.2f, winter=%v, seed=%d",
		cfg.Generation.GetScale(), cfg.Generation.Winter, cfg.World.Seed)

	// Prometheus метрики (если задан порт)
	if port := cfg.Metrics.GetMetricsPort(); port > 0 {
		world.StartMetricsHTTP(fmt.Sprintf(":%d", port))
	}

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===
	elements, err := osm.LoadElements(*inputPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки элементов: %v", err)
		log.Fatalf("❌ Ошибка загрузки элементов: %v", err)
	}
	logging.Info("📦 Загружено элементов: %d узлов, %d контуров, %d отношений",
		len(elements.Nodes), len(elements.Ways), len(elements.Relations))

	terrain := ground.NewPerlinGround(cfg.World.Seed)
	editor := world.NewEditor()

	// === ГЕНЕРАЦИЯ ===
	for i := range elements.Ways {
		way := &elements.Ways[i]
		if way.HasTag("building") || way.HasTag("building:part") {
			element.GenerateBuildings(editor, way, terrain, &cfg.Generation, nil)
			world.CountElement("building")
		}
	}

	for i := range elements.Relations {
		relation := &elements.Relations[i]
		if _, ok := relation.Tag("building"); ok {
			element.GenerateBuildingFromRelation(editor, relation, terrain, &cfg.Generation)
			world.CountElement("relation")
		}
	}

	for i := range elements.Nodes {
		node := &elements.Nodes[i]
		_, hasDoor := node.Tags["door"]
		_, hasEntrance := node.Tags["entrance"]
		if hasDoor || hasEntrance {
			element.GenerateDoors(editor, node, terrain)
			world.CountElement("door")
		}
	}

	logging.Info("🧱 Записано вокселов: %d", editor.BlockCount())

	// === СОХРАНЕНИЕ ===
	worldStorage, err := storage.NewWorldStorage(cfg.World.GetDataPath())
	if err != nil {
		logging.Error("❌ Ошибка открытия хранилища: %v", err)
		log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
	}
	defer worldStorage.Close()

	if err := worldStorage.SaveAll(editor); err != nil {
		logging.Error("❌ Ошибка сохранения мира: %v", err)
		log.Fatalf("❌ Ошибка сохранения мира: %v", err)
	}

	logging.Info("✅ Генерация завершена, мир сохранён в %s", cfg.World.GetDataPath())
}
