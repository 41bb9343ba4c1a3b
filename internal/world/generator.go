package world

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/noise"
)

// Column — эфемерное значение одной колонки: горизонтальная
// координата и высота поверхности. Не сохраняется между проходами.
type Column struct {
	X        int
	Z        int
	SurfaceY int
}

// Pos возвращает горизонтальную координату колонки
func (c Column) Pos() vec.Vec2 {
	return vec.Vec2{X: c.X, Z: c.Z}
}

// Placement — назначение типа блока одной ячейке мира
type Placement struct {
	Pos   vec.Vec3
	Block block.BlockType
}

// WorldGenerator порождает колонки мира из сида и конфигурации.
// Все методы — чистые функции своих аргументов: генератор не держит
// изменяемого состояния и безопасен для параллельного использования.
type WorldGenerator struct {
	cfg     *WorldConfig
	sampler noise.Sampler
}

// NewWorldGenerator создаёт генератор для нормализованной конфигурации
func NewWorldGenerator(cfg *WorldConfig) *WorldGenerator {
	var sampler noise.Sampler
	switch cfg.NoiseBackend {
	case NoiseBackendPerlin:
		sampler = noise.NewPerlinSampler(cfg.Seed)
	default:
		sampler = noise.ValueSampler{Seed: cfg.Seed}
	}
	return &WorldGenerator{cfg: cfg, sampler: sampler}
}

// Config возвращает конфигурацию генератора
func (wg *WorldGenerator) Config() *WorldConfig {
	return wg.cfg
}

// Column вычисляет колонку для указанной горизонтальной координаты
func (wg *WorldGenerator) Column(x, z int) Column {
	return Column{X: x, Z: z, SurfaceY: wg.SurfaceHeight(x, z)}
}

// EachColumn обходит все колонки мира в фиксированном порядке
// (x, затем z, от отрицательного края к положительному)
func (wg *WorldGenerator) EachColumn(fn func(Column) bool) {
	ext := wg.cfg.Extent
	for x := -ext.HalfWidth; x < ext.HalfWidth; x++ {
		for z := -ext.HalfDepth; z < ext.HalfDepth; z++ {
			if !fn(wg.Column(x, z)) {
				return
			}
		}
	}
}

// ColumnCount возвращает число колонок в границах мира
func (wg *WorldGenerator) ColumnCount() int {
	ext := wg.cfg.Extent
	return (2 * ext.HalfWidth) * (2 * ext.HalfDepth)
}
