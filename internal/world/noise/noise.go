package noise

import "math"

// Детерминированный 2D value noise без таблиц перестановок:
// значения в узлах решётки берутся из целочисленного avalanche-хеша
// от (x, z, seed), между узлами — билинейная интерполяция со
// сглаживанием. Одинаковые входы всегда дают одинаковый результат,
// в том числе между перезапусками процесса.

// fade сглаживает вес интерполяции: 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp выполняет линейную интерполяцию
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 перемешивает (x, z, seed) в 64-битное значение.
// Финализатор в стиле SplitMix64; большие нечётные константы
// на осях декоррелируют координаты.
func hash2(x, z int64, seed uint32) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// Value01 возвращает псевдослучайное значение узла решётки в [0, 1).
// Чистая функция от (x, z, seed).
func Value01(x, z int64, seed uint32) float64 {
	h := hash2(x, z, seed)
	return float64(h&0xFFFFFFFF) / float64(1<<32)
}

// Field2D возвращает сглаженное значение шума в [0, 1) для
// произвольной (уже умноженной на частоту) координаты.
// В целочисленных точках совпадает с Value01.
func Field2D(x, z float64, seed uint32) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	x1 := x0 + 1
	z1 := z0 + 1

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := Value01(int64(x0), int64(z0), seed)
	v10 := Value01(int64(x1), int64(z0), seed)
	v01 := Value01(int64(x0), int64(z1), seed)
	v11 := Value01(int64(x1), int64(z1), seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fz)
}

// Octave2D суммирует несколько октав Field2D с затуханием амплитуды.
// Результат нормируется обратно в [0, 1).
func Octave2D(x, z float64, seed uint32, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		v := Field2D(x*frequency, z*frequency, seed+uint32(i)*131)
		sum += v * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Sampler — источник сглаженного шумового поля.
// Sample принимает уже масштабированную координату и возвращает значение в [0, 1).
type Sampler interface {
	Sample(x, z float64) float64
}

// ValueSampler — сэмплер на основе хешевого value noise (бекенд по умолчанию)
type ValueSampler struct {
	Seed uint32
}

// Sample возвращает значение поля в [0, 1)
func (s ValueSampler) Sample(x, z float64) float64 {
	return Field2D(x, z, s.Seed)
}
