package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-world/internal/world/block"
)

// collectColumn выбирает все назначения блоков колонки
func collectColumn(wg *WorldGenerator, col Column) []Placement {
	var out []Placement
	for it := wg.ColumnBlocks(col); ; {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestColumnBlocks_LayerRule(t *testing.T) {
	// Пример из контракта: minHeight=-10, bottomLayerHeight=-8,
	// surfaceY=2. Ячейки y=-10,-9 — нижний слой; y=-8..1 —
	// подповерхностный; y=2 — поверхность.
	cfg := &WorldConfig{
		Seed:              1,
		Extent:            BuildExtent{HalfWidth: 2, VerticalSpan: 12, HalfDepth: 2},
		MinHeight:         -10,
		BottomLayerHeight: -8,
		NoiseFrequency:    0.05,
		Palette:           block.DefaultPalette(),
	}
	wg := mustGenerator(t, cfg)

	placements := collectColumn(wg, Column{X: 0, Z: 0, SurfaceY: 2})

	assert.Len(t, placements, 13, "surfaceY - minHeight + 1 ячеек")

	for i, p := range placements {
		y := -10 + i
		assert.Equal(t, y, p.Pos.Y, "высоты строго возрастают от minHeight")

		var want string
		switch {
		case y < -8:
			want = "stone"
		case y < 2:
			want = "dirt"
		default:
			want = "grass"
		}
		if p.Block.Name != want {
			t.Errorf("y=%d: ожидался %q, получен %q", y, want, p.Block.Name)
		}
	}
}

func TestColumnBlocks_SingleBlockColumn(t *testing.T) {
	// surfaceY == minHeight: цикл заполнения пуст, эмитится только
	// поверхностный блок
	cfg := validConfig()
	wg := mustGenerator(t, cfg)

	placements := collectColumn(wg, Column{X: 1, Z: 1, SurfaceY: cfg.MinHeight})

	assert.Len(t, placements, 1)
	assert.Equal(t, cfg.MinHeight, placements[0].Pos.Y)
	assert.Equal(t, "grass", placements[0].Block.Name)
}

func TestColumnBlocks_DegradedPalette(t *testing.T) {
	// Палитра из двух элементов: вся полоса ниже поверхности — блок
	// нижнего слоя
	grass, _ := block.Get("grass")
	stone, _ := block.Get("stone")
	cfg := &WorldConfig{
		Seed:              5,
		Extent:            BuildExtent{HalfWidth: 2, VerticalSpan: 10, HalfDepth: 2},
		MinHeight:         0,
		BottomLayerHeight: 3,
		NoiseFrequency:    0.05,
		Palette:           block.Palette{grass, stone},
	}
	warnings, err := cfg.Validate()
	assert.NoError(t, err)
	assert.NotEmpty(t, warnings, "деградация палитры должна давать предупреждение")

	wg := NewWorldGenerator(cfg)
	placements := collectColumn(wg, Column{X: 0, Z: 0, SurfaceY: 7})

	for _, p := range placements {
		if p.Pos.Y == 7 {
			assert.Equal(t, "grass", p.Block.Name)
		} else if p.Block.Name != "stone" {
			t.Errorf("y=%d: при палитре из двух элементов ожидался stone, получен %q", p.Pos.Y, p.Block.Name)
		}
	}
}

func TestColumnBlocks_Restartable(t *testing.T) {
	// Повторный обход колонки даёт идентичную последовательность
	cfg := validConfig()
	wg := mustGenerator(t, cfg)
	col := wg.Column(3, -2)

	first := collectColumn(wg, col)
	second := collectColumn(wg, col)

	assert.Equal(t, first, second)
}

func TestColumnIter_Len(t *testing.T) {
	cfg := validConfig()
	wg := mustGenerator(t, cfg)

	col := Column{X: 0, Z: 0, SurfaceY: -4}
	it := wg.ColumnBlocks(col)
	if got := it.Len(); got != 7 {
		t.Errorf("ожидалось 7 ячеек, получено %d", got)
	}
	assert.Len(t, collectColumn(wg, col), 7)
}
