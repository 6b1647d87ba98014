package geom

import (
	"testing"
	"time"

	"github.com/annel0/osm-worldgen/internal/vec"
)

func squarePolygon(size int) []vec.Vec2 {
	return []vec.Vec2{
		{X: 0, Z: 0},
		{X: size, Z: 0},
		{X: size, Z: size},
		{X: 0, Z: size},
	}
}

func TestFillAreaSquare(t *testing.T) {
	area := FillArea(squarePolygon(4), 0)

	// Внутренность квадрата 4x4 по центрам колонок: x,z из [0..3]
	if len(area) != 16 {
		t.Fatalf("Ожидалось 16 колонок, получено %d", len(area))
	}

	seen := make(map[vec.Vec2]bool)
	for _, pt := range area {
		seen[pt] = true
		if pt.X < 0 || pt.X > 3 || pt.Z < 0 || pt.Z > 3 {
			t.Errorf("Колонка %v вне внутренней области", pt)
		}
	}
	if len(seen) != len(area) {
		t.Error("Заливка не должна возвращать дубликаты")
	}
}

func TestFillAreaDegenerate(t *testing.T) {
	if area := FillArea(nil, 0); len(area) != 0 {
		t.Errorf("Пустой полигон должен дать пустую область, получено %v", area)
	}

	line := []vec.Vec2{{X: 0, Z: 0}, {X: 5, Z: 0}}
	if area := FillArea(line, 0); len(area) != 0 {
		t.Errorf("Вырожденный полигон должен дать пустую область, получено %v", area)
	}
}

func TestFillAreaTimeoutPartial(t *testing.T) {
	full := FillArea(squarePolygon(64), 0)
	partial := FillArea(squarePolygon(64), time.Nanosecond)

	// Исчерпанный бюджет даёт подмножество полного результата, а не зависание
	if len(partial) > len(full) {
		t.Fatalf("Частичный результат больше полного: %d > %d", len(partial), len(full))
	}

	fullSet := make(map[vec.Vec2]bool, len(full))
	for _, pt := range full {
		fullSet[pt] = true
	}
	for _, pt := range partial {
		if !fullSet[pt] {
			t.Errorf("Колонка %v частичного результата отсутствует в полном", pt)
		}
	}
}

func TestFillAreaTriangle(t *testing.T) {
	triangle := []vec.Vec2{{X: 0, Z: 0}, {X: 8, Z: 0}, {X: 0, Z: 8}}
	area := FillArea(triangle, 0)

	if len(area) == 0 {
		t.Fatal("Внутренность треугольника не должна быть пустой")
	}
	for _, pt := range area {
		// Все колонки лежат под гипотенузой
		if pt.X+pt.Z > 8 {
			t.Errorf("Колонка %v вне треугольника", pt)
		}
	}
}
