package world

import (
	"errors"
	"fmt"

	"github.com/annel0/voxel-world/internal/world/block"
)

// Бекенды шумового поля
const (
	NoiseBackendValue  = "value"  // хешевый value noise (по умолчанию)
	NoiseBackendPerlin = "perlin" // шум Перлина (go-perlin)
)

// DefaultNoiseFrequency — частота шума по умолчанию (сглаженность ландшафта)
const DefaultNoiseFrequency = 0.05

// ErrPaletteTooSmall возвращается, если палитра блоков короче двух элементов
var ErrPaletteTooSmall = errors.New("палитра блоков должна содержать минимум 2 элемента")

// BuildExtent задаёт границы генерируемого мира: полуширина и
// полуглубина по горизонтали, вертикальный диапазон по высоте
type BuildExtent struct {
	HalfWidth    int
	VerticalSpan int
	HalfDepth    int
}

// WorldConfig — параметры одного прохода генерации мира.
// Конструируется вызывающей стороной, нормализуется Validate
// и далее считается неизменяемой.
type WorldConfig struct {
	Seed              uint32        // Сид генерации
	Extent            BuildExtent   // Границы мира
	MinHeight         int           // Нижняя граница высоты (включительно)
	BottomLayerHeight int           // Начало полосы нижнего слоя (включительно)
	NoiseFrequency    float64       // Частота шума высоты
	Palette           block.Palette // Палитра блоков колонки
	NoiseBackend      string        // Бекенд шумового поля ("" == value)

	validated bool
	warnings  []string
}

// Validate нормализует конфигурацию и возвращает накопленные
// предупреждения. Правила применяются по порядку: фатальная проверка
// палитры, зажим компонентов границ, пересчёт maxHeight, приведение
// BottomLayerHeight в [MinHeight, MaxHeight], коррекция частоты шума.
// Поля вне допустимых диапазонов исправляются на месте, а не отклоняются.
func (c *WorldConfig) Validate() ([]string, error) {
	c.warnings = nil

	if len(c.Palette) < 2 {
		return nil, fmt.Errorf("некорректная конфигурация: %w (получено %d)", ErrPaletteTooSmall, len(c.Palette))
	}
	if c.Palette.Degraded() {
		c.warn("палитра из %d элементов: подповерхностная полоса будет использовать блок нижнего слоя %q", len(c.Palette), c.Palette.Bottom().Name)
	}

	if c.Extent.HalfWidth < 1 {
		c.warn("полуширина %d меньше 1, зажата до 1", c.Extent.HalfWidth)
		c.Extent.HalfWidth = 1
	}
	if c.Extent.VerticalSpan < 1 {
		c.warn("вертикальный диапазон %d меньше 1, зажат до 1", c.Extent.VerticalSpan)
		c.Extent.VerticalSpan = 1
	}
	if c.Extent.HalfDepth < 1 {
		c.warn("полуглубина %d меньше 1, зажата до 1", c.Extent.HalfDepth)
		c.Extent.HalfDepth = 1
	}

	maxHeight := c.MaxHeight()
	if c.BottomLayerHeight < c.MinHeight {
		c.BottomLayerHeight = c.MinHeight + 1
	}
	if c.BottomLayerHeight > maxHeight {
		c.BottomLayerHeight = maxHeight
	}

	if c.NoiseFrequency <= 0 {
		c.warn("неположительная частота шума %g, используется %g", c.NoiseFrequency, DefaultNoiseFrequency)
		c.NoiseFrequency = DefaultNoiseFrequency
	}

	if c.NoiseBackend == "" {
		c.NoiseBackend = NoiseBackendValue
	}

	c.validated = true
	return c.warnings, nil
}

// Validated сообщает, прошла ли конфигурация нормализацию
func (c *WorldConfig) Validated() bool {
	return c.validated
}

// Warnings возвращает предупреждения последней валидации
func (c *WorldConfig) Warnings() []string {
	return c.warnings
}

// MaxHeight возвращает верхнюю границу высоты (производное поле)
func (c *WorldConfig) MaxHeight() int {
	return c.MinHeight + c.Extent.VerticalSpan
}

// HeightRange возвращает ширину диапазона высот, всегда >= 1
func (c *WorldConfig) HeightRange() int {
	yMin, yMax := c.orderedHeights()
	if yMax-yMin < 1 {
		return 1
	}
	return yMax - yMin
}

// orderedHeights возвращает границы высоты в гарантированном порядке
// yMin <= yMax: значения конфигурации в принципе могли быть заданы
// в обратном порядке.
func (c *WorldConfig) orderedHeights() (int, int) {
	yMin := c.MinHeight
	yMax := c.MaxHeight()
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	return yMin, yMax
}

func (c *WorldConfig) warn(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}
