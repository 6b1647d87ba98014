package vec

// Vec3 представляет воксель мира с целочисленными координатами.
// Ось Y направлена вверх, плоскость X/Z — горизонтальная.
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToVec2 преобразует Vec3 в колонку, игнорируя высоту
func (v Vec3) ToVec2() Vec2 {
	return Vec2{
		X: v.X,
		Z: v.Z,
	}
}

// FromVec2 создает Vec3 из колонки и высоты
func FromVec2(v Vec2, y int) Vec3 {
	return Vec3{
		X: v.X,
		Y: y,
		Z: v.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}
