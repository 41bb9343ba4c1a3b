package world

import "errors"

// Strategy определяет способ материализации сгенерированного мира
type Strategy int

const (
	// StrategyBlockPerCell размещает отдельный блок на каждую ячейку
	StrategyBlockPerCell Strategy = iota
	// StrategyMergedMesh должна строить единую геометрию вместо
	// отдельных блоков. Точка расширения: пока не реализована.
	StrategyMergedMesh
)

// ErrMergedMeshNotImplemented возвращается при выборе стратегии
// единой геометрии
var ErrMergedMeshNotImplemented = errors.New("стратегия единой геометрии не реализована")

// String возвращает строковое представление стратегии
func (s Strategy) String() string {
	switch s {
	case StrategyBlockPerCell:
		return "block-per-cell"
	case StrategyMergedMesh:
		return "merged-mesh"
	default:
		return "unknown"
	}
}

func (s Strategy) check() error {
	switch s {
	case StrategyBlockPerCell:
		return nil
	case StrategyMergedMesh:
		return ErrMergedMeshNotImplemented
	default:
		return errors.New("неизвестная стратегия генерации")
	}
}
