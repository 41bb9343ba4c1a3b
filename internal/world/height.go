package world

import "math"

// SurfaceHeight отображает горизонтальную координату колонки в высоту
// поверхности. Результат всегда лежит в [BottomLayerHeight, maxHeight]
// включительно.
func (wg *WorldGenerator) SurfaceHeight(x, z int) int {
	cfg := wg.cfg
	yMin, yMax := cfg.orderedHeights()
	heightRange := cfg.HeightRange()

	n := wg.sampler.Sample(float64(x)*cfg.NoiseFrequency, float64(z)*cfg.NoiseFrequency)

	surfaceY := yMin + int(math.Round(n*float64(heightRange)))

	// Нижняя граница зажима — BottomLayerHeight, а не yMin: иначе
	// одиночная колонка могла бы опуститься ниже полосы нижнего слоя
	// и дать аномальный стек толщиной в одну ячейку.
	if surfaceY < cfg.BottomLayerHeight {
		surfaceY = cfg.BottomLayerHeight
	}
	if surfaceY > yMax {
		surfaceY = yMax
	}
	return surfaceY
}
