package world

import (
	"runtime"
	"sync"

	"github.com/annel0/voxel-world/internal/vec"
)

// SurfaceMap параллельно вычисляет колонки всего мира.
// Колонки независимы друг от друга, поэтому работа раскладывается на
// пул воркеров без синхронизации, а результат ключуется координатой —
// детерминизм не зависит от порядка завершения.
func (wg *WorldGenerator) SurfaceMap(workers int) map[vec.Vec2]Column {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan vec.Vec2, workers*2)
	results := make(chan Column, workers*2)

	var workerWG sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			for pos := range jobs {
				results <- wg.Column(pos.X, pos.Z)
			}
		}()
	}

	go func() {
		ext := wg.cfg.Extent
		for x := -ext.HalfWidth; x < ext.HalfWidth; x++ {
			for z := -ext.HalfDepth; z < ext.HalfDepth; z++ {
				jobs <- vec.Vec2{X: x, Z: z}
			}
		}
		close(jobs)
		workerWG.Wait()
		close(results)
	}()

	out := make(map[vec.Vec2]Column, wg.ColumnCount())
	for col := range results {
		out[col.Pos()] = col
	}
	return out
}
