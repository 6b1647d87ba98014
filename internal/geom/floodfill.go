package geom

import (
	"math"
	"sort"
	"time"

	"github.com/annel0/osm-worldgen/internal/vec"
)

// FillArea возвращает колонки, заключённые внутри замкнутого полигона.
// Полигон задаётся упорядоченным контуром; замыкание последней точки на
// первую выполняется здесь. Бюджет времени ограничивает работу: по его
// истечении возвращаются строки, заполненные к этому моменту (частичный
// результат вместо зависания). Вырожденный полигон (<3 точек) даёт пустой
// результат.
func FillArea(polygon []vec.Vec2, timeout time.Duration) []vec.Vec2 {
	if len(polygon) < 3 {
		return nil
	}

	minZ, maxZ := polygon[0].Z, polygon[0].Z
	for _, p := range polygon {
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	area := make([]vec.Vec2, 0)

	// Построчная заливка: для каждой строки ищем пересечения рёбер
	// со сканирующей линией по центрам колонок (z + 0.5).
	for z := minZ; z <= maxZ; z++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			// Бюджет исчерпан — возвращаем что успели
			return area
		}

		scan := float64(z) + 0.5
		crossings := make([]float64, 0, 4)

		for i := range polygon {
			p1 := polygon[i]
			p2 := polygon[(i+1)%len(polygon)]

			z1 := float64(p1.Z)
			z2 := float64(p2.Z)
			if (z1 <= scan) == (z2 <= scan) {
				continue
			}

			t := (scan - z1) / (z2 - z1)
			crossings = append(crossings, float64(p1.X)+t*float64(p2.X-p1.X))
		}

		sort.Float64s(crossings)

		// Пересечения идут парами вход/выход
		for i := 0; i+1 < len(crossings); i += 2 {
			from := int(math.Ceil(crossings[i] - 0.5))
			to := int(math.Floor(crossings[i+1] - 0.5))
			for x := from; x <= to; x++ {
				area = append(area, vec.Vec2{X: x, Z: z})
			}
		}
	}

	return area
}
