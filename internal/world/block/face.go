package block

// Face идентифицирует грань куба
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// String возвращает строковое представление грани
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// FaceCoordinate — позиция тайла в художественной сетке атласа.
// Индексация с нуля, строка 0 — верхняя.
type FaceCoordinate struct {
	Row int
	Col int
}

// FaceAtlasSet задаёт координаты атласа для шести граней куба
type FaceAtlasSet struct {
	Front  FaceCoordinate
	Back   FaceCoordinate
	Left   FaceCoordinate
	Right  FaceCoordinate
	Top    FaceCoordinate
	Bottom FaceCoordinate
}

// Coord возвращает координату атласа для указанной грани.
// Неизвестная грань разрешается в переднюю, а не в ошибку: текстуры
// могут запрашиваться спекулятивно.
func (s *FaceAtlasSet) Coord(face Face) FaceCoordinate {
	switch face {
	case FaceFront:
		return s.Front
	case FaceBack:
		return s.Back
	case FaceLeft:
		return s.Left
	case FaceRight:
		return s.Right
	case FaceTop:
		return s.Top
	case FaceBottom:
		return s.Bottom
	default:
		return s.Front
	}
}

// Uniform создаёт набор граней с одинаковой координатой атласа
func Uniform(c FaceCoordinate) *FaceAtlasSet {
	return &FaceAtlasSet{Front: c, Back: c, Left: c, Right: c, Top: c, Bottom: c}
}

// Capped создаёт набор граней с отдельными текстурами верха и низа
// и общей боковой текстурой (типичный случай травы)
func Capped(top, side, bottom FaceCoordinate) *FaceAtlasSet {
	return &FaceAtlasSet{Front: side, Back: side, Left: side, Right: side, Top: top, Bottom: bottom}
}
