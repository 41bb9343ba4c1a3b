package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики генерации мира. Регистрируются в дефолтном регистре;
// эндпоинт /metrics поднимается отдельно (см. cmd/worldgen).
//
// * worldgen_columns_generated_total — counter
// * worldgen_blocks_emitted_total — counter
// * worldgen_generation_duration_seconds — histogram
// * worldgen_config_warnings_total — counter
var (
	ColumnsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "columns_generated_total",
		Help:      "Общее число сгенерированных колонок мира.",
	})

	BlocksEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "blocks_emitted_total",
		Help:      "Общее число размещённых блоков.",
	})

	GenerationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "worldgen",
		Name:      "generation_duration_seconds",
		Help:      "Длительность полной перегенерации мира.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})

	ConfigWarnings = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "config_warnings_total",
		Help:      "Число предупреждений нормализации конфигурации (включая деградацию палитры).",
	})
)

func init() {
	prometheus.MustRegister(ColumnsGenerated, BlocksEmitted, GenerationSeconds, ConfigWarnings)
}
