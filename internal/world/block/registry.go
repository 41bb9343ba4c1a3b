package block

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]BlockType)
)

// Register добавляет тип блока в регистр (по имени)
func Register(bt BlockType) {
	mu.Lock()
	defer mu.Unlock()
	registry[bt.Name] = bt
}

// Get возвращает тип блока по имени
func Get(name string) (BlockType, bool) {
	mu.RLock()
	defer mu.RUnlock()
	bt, exists := registry[name]
	return bt, exists
}

// Names возвращает отсортированные имена всех зарегистрированных типов блоков
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Стандартные блоки: координаты граней рассчитаны на атлас 4x4.
// Верхняя строка художника — grass top / stone / dirt / sand.
func init() {
	Register(BlockType{
		Name:  "grass",
		Faces: Capped(FaceCoordinate{Row: 0, Col: 0}, FaceCoordinate{Row: 1, Col: 0}, FaceCoordinate{Row: 0, Col: 2}),
	})
	Register(BlockType{
		Name:  "dirt",
		Faces: Uniform(FaceCoordinate{Row: 0, Col: 2}),
	})
	Register(BlockType{
		Name:  "stone",
		Faces: Uniform(FaceCoordinate{Row: 0, Col: 1}),
	})
	Register(BlockType{
		Name:  "sand",
		Faces: Uniform(FaceCoordinate{Row: 0, Col: 3}),
	})
	Register(BlockType{
		Name:  "water",
		Faces: Uniform(FaceCoordinate{Row: 1, Col: 3}),
	})
	Register(BlockType{
		Name:  "bedrock",
		Faces: Uniform(FaceCoordinate{Row: 1, Col: 1}),
	})
}

// DefaultPalette возвращает стандартную палитру колонки:
// трава на поверхности, земля под ней, камень в нижнем слое
func DefaultPalette() Palette {
	grass, _ := Get("grass")
	dirt, _ := Get("dirt")
	stone, _ := Get("stone")
	return Palette{grass, dirt, stone}
}

// PaletteByNames собирает палитру из имён зарегистрированных блоков.
// Неизвестное имя — ошибка конфигурации, а не молчаливый пропуск.
func PaletteByNames(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, name := range names {
		bt, exists := Get(name)
		if !exists {
			return nil, fmt.Errorf("неизвестный тип блока %q (зарегистрированы: %v)", name, Names())
		}
		p = append(p, bt)
	}
	return p, nil
}
