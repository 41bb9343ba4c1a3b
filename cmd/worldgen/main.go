package main

import (
	"flag"
	"log"
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/world"
)

// statsPlacer — простейший внешний размещатель: вместо рендера
// считает блоки по типам. Удовлетворяет контракту ClearAll/Place.
type statsPlacer struct {
	placed map[string]int
	total  int
}

func newStatsPlacer() *statsPlacer {
	return &statsPlacer{placed: make(map[string]int)}
}

func (sp *statsPlacer) ClearAll() {
	sp.placed = make(map[string]int)
	sp.total = 0
}

func (sp *statsPlacer) Place(p world.Placement) {
	sp.placed[p.Block.Name]++
	sp.total++
}

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV WORLDGEN_CONFIG)")
	seed := flag.Uint("seed", 0, "переопределение сида генерации")
	serveMetrics := flag.Bool("metrics", false, "поднять HTTP эндпоинт /metrics")
	verbose := flag.Bool("verbose", false, "вывод уровня DEBUG в консоль для всех компонентов")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("worldgen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	lm := logging.GetLoggerManager()
	defer lm.CloseAll()

	if *verbose {
		// Компонентные логгеры создаются заранее, чтобы пороги
		// применились до первых сообщений
		lm.MustGetLogger("world")
		lm.MustGetLogger("config")
		for _, component := range lm.ListComponents() {
			if err := lm.SetLogLevel(component, logging.DEBUG, logging.TRACE); err != nil {
				logging.Warn("Не удалось сменить уровень логов %s: %v", component, err)
			}
		}
	}

	logging.Info("🌍 Запуск генератора воксельного мира...")

	// === КОНФИГУРАЦИЯ ===
	fileCfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		return
	}
	if fileCfg == nil {
		fileCfg = &config.Config{}
	}

	worldCfg, err := fileCfg.WorldConfig()
	if err != nil {
		logging.Error("Ошибка конфигурации мира: %v", err)
		return
	}
	if *seed != 0 {
		worldCfg.Seed = uint32(*seed)
	}
	if worldCfg.Extent.HalfWidth == 0 && worldCfg.Extent.HalfDepth == 0 {
		// Дефолтные границы для запуска без конфига
		worldCfg.Extent = world.BuildExtent{HalfWidth: 16, VerticalSpan: 12, HalfDepth: 16}
		worldCfg.BottomLayerHeight = worldCfg.MinHeight + 2
	}

	// === МЕТРИКИ ===
	if *serveMetrics {
		addr := fileCfg.Metrics.GetMetricsAddr()
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			logging.Info("📊 Метрики доступны на %s/metrics", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logging.Error("Ошибка HTTP сервера метрик: %v", err)
			}
		}()
	}

	// === ГЕНЕРАЦИЯ ===
	w, err := world.NewWorld(worldCfg)
	if err != nil {
		logging.Error("Отклонённая конфигурация: %v", err)
		return
	}

	min, max := w.Bounds()
	logging.Info("📐 Границы мира: от (%d,%d,%d) до (%d,%d,%d), сид %d",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z, worldCfg.Seed)

	placer := newStatsPlacer()
	if err := w.Rebuild(placer); err != nil {
		logging.Error("Ошибка генерации: %v", err)
		return
	}

	// Сводка по типам блоков в стабильном порядке
	names := make([]string, 0, len(placer.placed))
	for name := range placer.placed {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logging.Info("   %-10s %d", name, placer.placed[name])
	}
	logging.Info("✅ Готово: %d блоков в %d колонках", placer.total, w.Generator().ColumnCount())
}
