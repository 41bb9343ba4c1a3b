package world

import "github.com/annel0/voxel-world/internal/world/block"

// blockForHeight возвращает тип блока для ячейки колонки по правилу
// слоёв: ниже BottomLayerHeight — нижний слой, на поверхности —
// поверхностный блок, между ними — подповерхностный.
func (c *WorldConfig) blockForHeight(y, surfaceY int) block.BlockType {
	switch {
	case y == surfaceY:
		return c.Palette.Surface()
	case y < c.BottomLayerHeight:
		return c.Palette.Bottom()
	default:
		return c.Palette.Subsurface()
	}
}

// ColumnIter лениво выдаёт назначения блоков одной колонки снизу
// вверх: от MinHeight до SurfaceY включительно. Итератор одноразовый;
// новый получают повторным вызовом ColumnBlocks.
type ColumnIter struct {
	cfg  *WorldConfig
	col  Column
	y    int
	done bool
}

// ColumnBlocks возвращает свежий итератор блоков колонки
func (wg *WorldGenerator) ColumnBlocks(col Column) *ColumnIter {
	return &ColumnIter{cfg: wg.cfg, col: col, y: wg.cfg.MinHeight}
}

// Next возвращает следующее назначение блока.
// Второе значение — false после исчерпания колонки.
func (it *ColumnIter) Next() (Placement, bool) {
	if it.done {
		return Placement{}, false
	}
	p := Placement{
		Pos:   it.col.Pos().At(it.y),
		Block: it.cfg.blockForHeight(it.y, it.col.SurfaceY),
	}
	if it.y >= it.col.SurfaceY {
		// Колонка высотой в один блок: цикл заполнения пуст,
		// эмитится только поверхностный блок.
		it.done = true
	}
	it.y++
	return p, true
}

// Len возвращает полное число блоков колонки
func (it *ColumnIter) Len() int {
	return it.col.SurfaceY - it.cfg.MinHeight + 1
}
