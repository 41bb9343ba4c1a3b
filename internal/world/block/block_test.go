package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteRoles(t *testing.T) {
	grass := BlockType{Name: "g"}
	dirt := BlockType{Name: "d"}
	stone := BlockType{Name: "s"}

	full := Palette{grass, dirt, stone}
	assert.Equal(t, "g", full.Surface().Name)
	assert.Equal(t, "d", full.Subsurface().Name)
	assert.Equal(t, "s", full.Bottom().Name)
	assert.False(t, full.Degraded())

	// Палитра из двух элементов: подповерхностная роль достаётся
	// блоку нижнего слоя
	short := Palette{grass, stone}
	assert.Equal(t, "g", short.Surface().Name)
	assert.Equal(t, "s", short.Subsurface().Name)
	assert.Equal(t, "s", short.Bottom().Name)
	assert.True(t, short.Degraded())
}

func TestRegistryStandardBlocks(t *testing.T) {
	for _, name := range []string{"grass", "dirt", "stone", "sand", "water", "bedrock"} {
		bt, exists := Get(name)
		if !exists {
			t.Errorf("стандартный блок %q не зарегистрирован", name)
			continue
		}
		if bt.Faces == nil {
			t.Errorf("блок %q без координат атласа", name)
		}
	}

	_, exists := Get("obsidian")
	assert.False(t, exists)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	Register(BlockType{Name: "test_marble", Faces: Uniform(FaceCoordinate{Row: 2, Col: 2})})

	bt, exists := Get("test_marble")
	assert.True(t, exists)
	assert.Equal(t, FaceCoordinate{Row: 2, Col: 2}, bt.Faces.Coord(FaceLeft))
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Len(t, p, 3)
	assert.Equal(t, "grass", p.Surface().Name)
	assert.Equal(t, "dirt", p.Subsurface().Name)
	assert.Equal(t, "stone", p.Bottom().Name)
}

func TestRegistryNames(t *testing.T) {
	names := Names()

	assert.IsIncreasing(t, names)
	for _, want := range []string{"bedrock", "dirt", "grass", "sand", "stone", "water"} {
		assert.Contains(t, names, want)
	}
}

func TestPaletteByNames(t *testing.T) {
	p, err := PaletteByNames([]string{"grass", "dirt", "stone"})
	assert.NoError(t, err)
	assert.Len(t, p, 3)
	assert.Equal(t, "grass", p[0].Name)
	assert.Equal(t, "stone", p[2].Name)

	// Неизвестное имя — ошибка с перечнем зарегистрированных блоков
	p, err = PaletteByNames([]string{"grass", "no_such_block"})
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "no_such_block")
	assert.ErrorContains(t, err, "grass")
}

func TestCappedFaces(t *testing.T) {
	top := FaceCoordinate{Row: 0, Col: 0}
	side := FaceCoordinate{Row: 1, Col: 0}
	bottom := FaceCoordinate{Row: 0, Col: 2}
	set := Capped(top, side, bottom)

	assert.Equal(t, top, set.Coord(FaceTop))
	assert.Equal(t, bottom, set.Coord(FaceBottom))
	for _, f := range []Face{FaceFront, FaceBack, FaceLeft, FaceRight} {
		assert.Equal(t, side, set.Coord(f), "боковая грань %s", f)
	}
}
