package block

// AtlasConfig описывает разбиение текстурного атласа на сетку тайлов
type AtlasConfig struct {
	Rows int
	Cols int
}

// Normalize приводит размеры сетки к минимуму 1x1
func (a *AtlasConfig) Normalize() {
	if a.Rows < 1 {
		a.Rows = 1
	}
	if a.Cols < 1 {
		a.Cols = 1
	}
}

// UVRect — нормализованный прямоугольник текстурных координат.
// Начало координат — левый нижний угол, все значения в [0, 1].
type UVRect struct {
	UMin float64
	VMin float64
	UMax float64
	VMax float64
}

// FaceUV разрешает художественную координату тайла в UV-прямоугольник.
// Художественная сетка нумерует строки сверху вниз, а UV-пространство
// растёт снизу вверх, поэтому строка переворачивается. Выход за
// границы сетки молча прижимается к краю.
func FaceUV(fc FaceCoordinate, atlas AtlasConfig) UVRect {
	atlas.Normalize()

	row := clampInt(fc.Row, 0, atlas.Rows-1)
	col := clampInt(fc.Col, 0, atlas.Cols-1)

	// Переворот строки: строка 0 художника — верхняя полоса UV
	flipped := (atlas.Rows - 1) - row

	return UVRect{
		UMin: float64(col) / float64(atlas.Cols),
		VMin: float64(flipped) / float64(atlas.Rows),
		UMax: float64(col+1) / float64(atlas.Cols),
		VMax: float64(flipped+1) / float64(atlas.Rows),
	}
}

// ResolveFaceUV разрешает UV-прямоугольник для именованной грани блока.
// Блок без набора граней получает весь атлас целиком.
func ResolveFaceUV(bt BlockType, face Face, atlas AtlasConfig) UVRect {
	if bt.Faces == nil {
		atlas.Normalize()
		return UVRect{UMin: 0, VMin: 0, UMax: 1, VMax: 1}
	}
	return FaceUV(bt.Faces.Coord(face), atlas)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
