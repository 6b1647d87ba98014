package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора.
// Содержит параметры мира, генерации и метрик; может расширяться.

type Config struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type WorldConfig struct {
	Seed     int64  `yaml:"seed"`
	DataPath string `yaml:"data_path"`
}

type GenerationConfig struct {
	Scale         float64 `yaml:"scale"`
	Winter        bool    `yaml:"winter"`
	FillTimeoutMS int     `yaml:"fill_timeout_ms"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// FillTimeout возвращает бюджет времени заливки полигонов
func (g *GenerationConfig) FillTimeout() time.Duration {
	if g.FillTimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(g.FillTimeoutMS) * time.Millisecond
}

// GetScale возвращает масштаб генерации (минимум — значение по умолчанию 1.0)
func (g *GenerationConfig) GetScale() float64 {
	if g.Scale <= 0 {
		return 1.0
	}
	return g.Scale
}

// GetDataPath возвращает директорию данных мира с поддержкой fallback значений
func (w *WorldConfig) GetDataPath() string {
	if w.DataPath != "" {
		return w.DataPath
	}
	if env := os.Getenv("WORLDGEN_DATA_PATH"); env != "" {
		return env
	}
	return "data"
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(m.Port, "WORLDGEN_METRICS_PORT", 0)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed: 1,
		},
		Generation: GenerationConfig{
			Scale:         1.0,
			FillTimeoutMS: 5000,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLDGEN_CONFIG или возвращает дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("WORLDGEN_CONFIG")
		if path == "" {
			return Default(), nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
