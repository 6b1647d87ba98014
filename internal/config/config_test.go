package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutPath(t *testing.T) {
	os.Unsetenv("WORLDGEN_CONFIG")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Загрузка без пути не должна быть ошибкой: %v", err)
	}

	if cfg.Generation.GetScale() != 1.0 {
		t.Errorf("Неверный масштаб по умолчанию: %v", cfg.Generation.GetScale())
	}
	if cfg.Generation.FillTimeout() != 5*time.Second {
		t.Errorf("Неверный бюджет заливки по умолчанию: %v", cfg.Generation.FillTimeout())
	}
	if cfg.World.GetDataPath() != "data" {
		t.Errorf("Неверная директория данных по умолчанию: %v", cfg.World.GetDataPath())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	content := `
world:
  seed: 42
  data_path: /tmp/worldgen
generation:
  scale: 2.5
  winter: true
  fill_timeout_ms: 250
metrics:
  port: 9100
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Не удалось записать файл конфигурации: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if cfg.World.Seed != 42 {
		t.Errorf("Неверный seed: %d", cfg.World.Seed)
	}
	if cfg.World.GetDataPath() != "/tmp/worldgen" {
		t.Errorf("Неверная директория данных: %s", cfg.World.GetDataPath())
	}
	if cfg.Generation.GetScale() != 2.5 {
		t.Errorf("Неверный масштаб: %v", cfg.Generation.GetScale())
	}
	if !cfg.Generation.Winter {
		t.Error("Зимний режим не прочитался")
	}
	if cfg.Generation.FillTimeout() != 250*time.Millisecond {
		t.Errorf("Неверный бюджет заливки: %v", cfg.Generation.FillTimeout())
	}
	if cfg.Metrics.GetMetricsPort() != 9100 {
		t.Errorf("Неверный порт метрик: %d", cfg.Metrics.GetMetricsPort())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yml"); err == nil {
		t.Error("Несуществующий файл должен возвращать ошибку")
	}
}

func TestMetricsPortEnvFallback(t *testing.T) {
	os.Setenv("WORLDGEN_METRICS_PORT", "9200")
	defer os.Unsetenv("WORLDGEN_METRICS_PORT")

	m := MetricsConfig{}
	if m.GetMetricsPort() != 9200 {
		t.Errorf("Порт из окружения не применился: %d", m.GetMetricsPort())
	}

	// Значение из конфига имеет приоритет над окружением
	m.Port = 9300
	if m.GetMetricsPort() != 9300 {
		t.Errorf("Порт из конфига должен иметь приоритет: %d", m.GetMetricsPort())
	}
}
