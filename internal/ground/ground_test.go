package ground

import (
	"testing"

	"github.com/annel0/osm-worldgen/internal/vec"
)

func TestPerlinGroundLevelsInRange(t *testing.T) {
	g := NewPerlinGround(12345)

	for x := -50; x <= 50; x += 7 {
		for z := -50; z <= 50; z += 7 {
			level := g.Level(vec.Vec2{X: x, Z: z})
			if level < SurfaceBase || level > SurfaceBase+SurfaceAmplitude {
				t.Errorf("Высота %d в колонке (%d,%d) вне диапазона [%d,%d]",
					level, x, z, SurfaceBase, SurfaceBase+SurfaceAmplitude)
			}
		}
	}
}

func TestPerlinGroundDeterministic(t *testing.T) {
	g := NewPerlinGround(777)
	p := vec.Vec2{X: 13, Z: -8}

	first := g.Level(p)
	second := g.Level(p)
	if first != second {
		t.Errorf("Повторный запрос дал другую высоту: %d != %d", first, second)
	}
}

func TestMinLevel(t *testing.T) {
	g := NewPerlinGround(1)

	points := []vec.Vec2{{X: 0, Z: 0}, {X: 30, Z: 0}, {X: 0, Z: 30}, {X: 30, Z: 30}}
	min, ok := g.MinLevel(points)
	if !ok {
		t.Fatal("Минимум по непустому набору должен быть разрешим")
	}

	for _, p := range points {
		if level := g.Level(p); level < min {
			t.Errorf("Найдена колонка ниже минимума: %d < %d", level, min)
		}
	}
}

func TestMinLevelEmpty(t *testing.T) {
	g := NewPerlinGround(1)
	if _, ok := g.MinLevel(nil); ok {
		t.Error("Пустой набор колонок должен быть неразрешим")
	}

	flat := &FlatGround{Surface: 64}
	if _, ok := flat.MinLevel(nil); ok {
		t.Error("Пустой набор колонок должен быть неразрешим и для плоского мира")
	}
}

func TestFlatGround(t *testing.T) {
	flat := &FlatGround{Surface: 70}

	if flat.Level(vec.Vec2{X: 1000, Z: -1000}) != 70 {
		t.Error("Плоский мир возвращает фиксированную высоту")
	}
	if min, ok := flat.MinLevel([]vec.Vec2{{X: 0, Z: 0}}); !ok || min != 70 {
		t.Errorf("Неверный минимум плоского мира: %d, %v", min, ok)
	}
}
