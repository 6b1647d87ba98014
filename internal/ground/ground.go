package ground

import (
	"github.com/annel0/osm-worldgen/internal/util"
	"github.com/annel0/osm-worldgen/internal/vec"
)

// Ground отвечает на запросы высоты поверхности мира.
// MinLevel возвращает false, когда высоту определить нельзя
// (пустой набор колонок) — вызывающая сторона пропускает элемент.
type Ground interface {
	Level(p vec.Vec2) int
	MinLevel(points []vec.Vec2) (int, bool)
}

// Константы рельефа
const (
	SurfaceBase      = 64   // Базовая высота поверхности
	SurfaceAmplitude = 12   // Размах высот рельефа
	noiseScale       = 0.05 // Масштаб шума (сглаженность ландшафта)
)

// PerlinGround вычисляет высоту поверхности по шуму Перлина
type PerlinGround struct {
	seed int64
}

// NewPerlinGround создаёт оракул рельефа с указанным сидом
func NewPerlinGround(seed int64) *PerlinGround {
	util.InitPerlinNoise(seed)

	return &PerlinGround{seed: seed}
}

// Level возвращает высоту поверхности для колонки
func (g *PerlinGround) Level(p vec.Vec2) int {
	noise := util.PerlinNoise2D(float64(p.X)*noiseScale, float64(p.Z)*noiseScale, g.seed)
	return SurfaceBase + int(noise*SurfaceAmplitude)
}

// MinLevel возвращает минимальную высоту поверхности по набору колонок.
// Для пустого набора высота неразрешима.
func (g *PerlinGround) MinLevel(points []vec.Vec2) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}

	min := g.Level(points[0])
	for _, p := range points[1:] {
		if level := g.Level(p); level < min {
			min = level
		}
	}
	return min, true
}

// FlatGround возвращает фиксированную высоту поверхности.
// Используется для плоских миров и в тестах.
type FlatGround struct {
	Surface int
}

// Level возвращает высоту поверхности для колонки
func (g *FlatGround) Level(p vec.Vec2) int {
	return g.Surface
}

// MinLevel возвращает минимальную высоту поверхности по набору колонок
func (g *FlatGround) MinLevel(points []vec.Vec2) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	return g.Surface, true
}
