package block

// BlockType описывает тип блока мира.
// RenderHandle — непрозрачный дескриптор внешнего рендера (например,
// индекс меша или идентификатор материала); ядро генерации его не
// интерпретирует и не разыменовывает.
type BlockType struct {
	Name   string        // Имя типа блока
	Render interface{}   // Внешний дескриптор рендера (опционален)
	Faces  *FaceAtlasSet // Координаты граней в атласе текстур (опциональны)
}

// Palette — упорядоченный набор типов блоков колонки.
// Первый элемент — поверхностный блок, второй (если палитра из трёх и
// более элементов) — подповерхностный, последний — блок нижнего слоя.
type Palette []BlockType

// Surface возвращает поверхностный блок
func (p Palette) Surface() BlockType {
	return p[0]
}

// Subsurface возвращает подповерхностный блок.
// Если палитра короче трёх элементов, роль достаётся блоку нижнего
// слоя — вся подповерхностная полоса становится одним материалом.
func (p Palette) Subsurface() BlockType {
	if len(p) >= 3 {
		return p[1]
	}
	return p[len(p)-1]
}

// Bottom возвращает блок нижнего слоя
func (p Palette) Bottom() BlockType {
	return p[len(p)-1]
}

// Degraded сообщает, что в палитре нет отдельного подповерхностного блока
func (p Palette) Degraded() bool {
	return len(p) < 3
}
