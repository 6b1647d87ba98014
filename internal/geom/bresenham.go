package geom

import (
	"github.com/annel0/osm-worldgen/internal/vec"
)

// BresenhamLine возвращает все вокселы на отрезке между двумя точками,
// включая обе конечные. Ведущей осью выбирается ось с наибольшей дельтой.
func BresenhamLine(a, b vec.Vec3) []vec.Vec3 {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	dz := abs(b.Z - a.Z)

	sx := sign(b.X - a.X)
	sy := sign(b.Y - a.Y)
	sz := sign(b.Z - a.Z)

	points := make([]vec.Vec3, 0, max3(dx, dy, dz)+1)
	x, y, z := a.X, a.Y, a.Z

	switch {
	case dx >= dy && dx >= dz:
		// Ведущая ось X
		err1 := 2*dy - dx
		err2 := 2*dz - dx
		for i := 0; i <= dx; i++ {
			points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			if err1 > 0 {
				y += sy
				err1 -= 2 * dx
			}
			if err2 > 0 {
				z += sz
				err2 -= 2 * dx
			}
			err1 += 2 * dy
			err2 += 2 * dz
			x += sx
		}
	case dy >= dx && dy >= dz:
		// Ведущая ось Y
		err1 := 2*dx - dy
		err2 := 2*dz - dy
		for i := 0; i <= dy; i++ {
			points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			if err1 > 0 {
				x += sx
				err1 -= 2 * dy
			}
			if err2 > 0 {
				z += sz
				err2 -= 2 * dy
			}
			err1 += 2 * dx
			err2 += 2 * dz
			y += sy
		}
	default:
		// Ведущая ось Z
		err1 := 2*dy - dz
		err2 := 2*dx - dz
		for i := 0; i <= dz; i++ {
			points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			if err1 > 0 {
				y += sy
				err1 -= 2 * dz
			}
			if err2 > 0 {
				x += sx
				err2 -= 2 * dz
			}
			err1 += 2 * dy
			err2 += 2 * dx
			z += sz
		}
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
