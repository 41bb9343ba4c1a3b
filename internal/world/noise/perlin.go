package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// PerlinSampler — альтернативный бекенд шумового поля на основе
// шума Перлина. Даёт более "рельефный" ландшафт, но значения узлов
// решётки не совпадают с Value01.
type PerlinSampler struct {
	p *perlin.Perlin
}

// NewPerlinSampler создаёт сэмплер Перлина с указанным сидом
func NewPerlinSampler(seed uint32) *PerlinSampler {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &PerlinSampler{p: perlin.NewPerlin(alpha, beta, n, int64(seed))}
}

// Sample возвращает значение поля в [0, 1)
func (s *PerlinSampler) Sample(x, z float64) float64 {
	// Noise2D возвращает значение примерно в [-1, 1]
	v := (s.p.Noise2D(x, z) + 1.0) / 2.0
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
