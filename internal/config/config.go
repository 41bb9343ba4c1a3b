package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Config — корневая структура YAML-конфигурации приложения.
// Это внешняя обвязка: ядро генерации принимает уже собранный
// world.WorldConfig и о файлах ничего не знает.

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed              uint32   `yaml:"seed"`
	HalfWidth         int      `yaml:"half_width"`
	VerticalSpan      int      `yaml:"vertical_span"`
	HalfDepth         int      `yaml:"half_depth"`
	MinHeight         int      `yaml:"min_height"`
	BottomLayerHeight int      `yaml:"bottom_layer_height"`
	NoiseFrequency    float64  `yaml:"noise_frequency"`
	NoiseBackend      string   `yaml:"noise_backend"`
	Palette           []string `yaml:"palette"`
}

type AtlasConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// GetMetricsAddr возвращает адрес метрик с приоритетом: config -> env -> default
func (m *MetricsConfig) GetMetricsAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	if envVal := os.Getenv("WORLDGEN_METRICS_ADDR"); envVal != "" {
		return envVal
	}
	return ":2112"
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLDGEN_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	clog := logging.GetConfigLogger()

	if path == "" {
		path = os.Getenv("WORLDGEN_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
		clog.Debug("путь конфигурации взят из WORLDGEN_CONFIG: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	clog.Info("конфигурация загружена из %s", path)
	return &cfg, nil
}

// WorldConfig собирает конфигурацию генерации из секции world.
// Палитра разрешается через регистр блоков; неизвестные имена —
// ошибка конфигурации, а не молчаливый пропуск.
func (c *Config) WorldConfig() (*world.WorldConfig, error) {
	palette, err := block.PaletteByNames(c.World.Palette)
	if err != nil {
		return nil, fmt.Errorf("палитра: %w", err)
	}
	if len(palette) == 0 {
		palette = block.DefaultPalette()
	}

	return &world.WorldConfig{
		Seed: c.World.Seed,
		Extent: world.BuildExtent{
			HalfWidth:    c.World.HalfWidth,
			VerticalSpan: c.World.VerticalSpan,
			HalfDepth:    c.World.HalfDepth,
		},
		MinHeight:         c.World.MinHeight,
		BottomLayerHeight: c.World.BottomLayerHeight,
		NoiseFrequency:    c.World.NoiseFrequency,
		NoiseBackend:      c.World.NoiseBackend,
		Palette:           palette,
	}, nil
}

// AtlasConfig возвращает конфигурацию атласа (дефолт 4x4)
func (c *Config) AtlasConfig() block.AtlasConfig {
	atlas := block.AtlasConfig{Rows: c.Atlas.Rows, Cols: c.Atlas.Cols}
	if atlas.Rows == 0 && atlas.Cols == 0 {
		atlas = block.AtlasConfig{Rows: 4, Cols: 4}
	}
	atlas.Normalize()
	return atlas
}
