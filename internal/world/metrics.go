package world

import (
	"net/http"

	"github.com/annel0/osm-worldgen/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus-метрики записи мира. Регистрируются один раз при
// инициализации пакета, чтобы несколько редакторов (в том числе в
// тестах) не конфликтовали в глобальном регистре.
var (
	blocksPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "blocks_placed_total",
		Help:      "Общее число записанных вокселов.",
	})
	blocksSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "blocks_skipped_total",
		Help:      "Вокселов, пропущенных из-за ограничения перезаписи.",
	})
	elementsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "elements_generated_total",
		Help:      "Обработанных элементов по типам.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(blocksPlaced, blocksSkipped, elementsGenerated)
}

// CountElement учитывает обработанный элемент указанного типа
func CountElement(kind string) {
	elementsGenerated.WithLabelValues(kind).Inc()
}

// StartMetricsHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе
// (например, ":2112"). Метод неблокирующий: сервер стартует в отдельной
// горутине.
func StartMetricsHTTP(addr string) {
	go func() {
		logging.Info("Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}
