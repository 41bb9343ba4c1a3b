package world

import (
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/metrics"
	"github.com/annel0/voxel-world/internal/vec"
)

// Placer — внешний коллаборатор размещения блоков (рендер, сцена,
// буфер мира). Контракт полной перегенерации: сначала ClearAll,
// затем Place для каждого блока. Последовательность упорядочена,
// но не атомарна с точки зрения вызывающей стороны.
type Placer interface {
	ClearAll()
	Place(p Placement)
}

// World — один инициализированный мир: нормализованная конфигурация
// плюс генератор. Создаётся явно вызовом NewWorld; никаких неявных
// хуков жизненного цикла.
type World struct {
	ID  uuid.UUID
	gen *WorldGenerator
}

// NewWorld валидирует конфигурацию и создаёт мир.
// Предупреждения валидации логируются и учитываются в метриках;
// фатальная ошибка конфигурации возвращается до начала генерации.
func NewWorld(cfg *WorldConfig) (*World, error) {
	warnings, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	w := &World{
		ID:  uuid.New(),
		gen: NewWorldGenerator(cfg),
	}

	wlog := logging.GetWorldLogger()
	for _, warning := range warnings {
		wlog.Warn("мир %s: %s", w.ID, warning)
		metrics.ConfigWarnings.Inc()
	}

	return w, nil
}

// Generator возвращает генератор мира
func (w *World) Generator() *WorldGenerator {
	return w.gen
}

// Config возвращает нормализованную конфигурацию мира
func (w *World) Config() *WorldConfig {
	return w.gen.cfg
}

// Bounds возвращает границы мира для отладочной обводки.
// Доступ только на чтение: оверлей не имеет записи в состояние ядра.
func (w *World) Bounds() (vec.Vec3, vec.Vec3) {
	cfg := w.gen.cfg
	min := vec.Vec3{X: -cfg.Extent.HalfWidth, Y: cfg.MinHeight, Z: -cfg.Extent.HalfDepth}
	max := vec.Vec3{X: cfg.Extent.HalfWidth, Y: cfg.MaxHeight(), Z: cfg.Extent.HalfDepth}
	return min, max
}

// BlockIter лениво обходит блоки всего мира: колонки в порядке
// EachColumn, внутри колонки — снизу вверх. Итератор одноразовый;
// повторный вызов Blocks даёт новый, и при идентичной конфигурации
// последовательности поэлементно совпадают.
type BlockIter struct {
	gen  *WorldGenerator
	x, z int
	col  *ColumnIter
	done bool
}

// Blocks возвращает свежий итератор по всем блокам мира
func (w *World) Blocks() *BlockIter {
	ext := w.gen.cfg.Extent
	return &BlockIter{
		gen: w.gen,
		x:   -ext.HalfWidth,
		z:   -ext.HalfDepth,
	}
}

// Next возвращает следующее назначение блока мира
func (it *BlockIter) Next() (Placement, bool) {
	for {
		if it.done {
			return Placement{}, false
		}
		if it.col == nil {
			it.col = it.gen.ColumnBlocks(it.gen.Column(it.x, it.z))
		}
		if p, ok := it.col.Next(); ok {
			return p, true
		}

		// Колонка исчерпана — переход к следующей
		it.col = nil
		ext := it.gen.cfg.Extent
		it.z++
		if it.z >= ext.HalfDepth {
			it.z = -ext.HalfDepth
			it.x++
			if it.x >= ext.HalfWidth {
				it.done = true
			}
		}
	}
}

// Rebuild выполняет полную перегенерацию мира в размещатель:
// очистка всего предыдущего вывода, затем поколоночная генерация.
func (w *World) Rebuild(placer Placer) error {
	return w.RebuildWith(placer, StrategyBlockPerCell)
}

// RebuildWith выполняет перегенерацию указанной стратегией
func (w *World) RebuildWith(placer Placer, strategy Strategy) error {
	if err := strategy.check(); err != nil {
		return err
	}

	start := time.Now()
	placer.ClearAll()

	columns := 0
	blocks := 0
	w.gen.EachColumn(func(col Column) bool {
		columns++
		for it := w.gen.ColumnBlocks(col); ; {
			p, ok := it.Next()
			if !ok {
				break
			}
			placer.Place(p)
			blocks++
		}
		return true
	})

	elapsed := time.Since(start)
	metrics.ColumnsGenerated.Add(float64(columns))
	metrics.BlocksEmitted.Add(float64(blocks))
	metrics.GenerationSeconds.Observe(elapsed.Seconds())

	logging.GetWorldLogger().Info("мир %s: перегенерация завершена, %d колонок, %d блоков за %v", w.ID, columns, blocks, elapsed)
	return nil
}
