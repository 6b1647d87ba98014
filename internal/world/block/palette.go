package block

// ColorMapping связывает опорный цвет с блоком каталога
type ColorMapping struct {
	Color RGB
	Block BlockID
}

// Каталоги вариаций для случайного выбора при отсутствии цветовых тегов.
// Порядок фиксирован: от него зависит детерминированность поиска по цвету.

// CornerVariations возвращает каталог угловых блоков зданий
func CornerVariations() []BlockID {
	return []BlockID{
		StoneBricksBlockID,
		CobblestoneBlockID,
		BricksBlockID,
		MossyCobblestoneID,
		SandstoneBlockID,
		PolishedAndesiteID,
		PolishedBlackstoneID,
		EndStoneBricksBlockID,
	}
}

// WallVariations возвращает каталог стеновых блоков зданий
func WallVariations() []BlockID {
	return []BlockID{
		WhiteConcreteID,
		LightGrayConcreteID,
		GrayConcreteID,
		BricksBlockID,
		SmoothSandstoneID,
		WhiteTerracottaID,
		LightGrayTerracottaID,
		MudBricksBlockID,
		QuartzBlockID,
	}
}

// FloorVariations возвращает каталог блоков пола/крыши для частных домов
func FloorVariations() []BlockID {
	return []BlockID{
		DarkOakPlanksBlockID,
		SprucePlanksBlockID,
		BricksBlockID,
		RedTerracottaID,
		BrownTerracottaID,
		GrayTerracottaID,
		SmoothStoneBlockID,
	}
}

// WallColorMap возвращает карту цветов для подбора стенового блока по тегу
func WallColorMap() []ColorMapping {
	return []ColorMapping{
		{RGB{207, 213, 214}, WhiteConcreteID},
		{RGB{125, 125, 115}, LightGrayConcreteID},
		{RGB{55, 58, 62}, GrayConcreteID},
		{RGB{8, 10, 15}, BlackConcreteID},
		{RGB{96, 60, 32}, BrownConcreteID},
		{RGB{142, 33, 33}, RedConcreteID},
		{RGB{224, 97, 1}, OrangeConcreteID},
		{RGB{241, 175, 21}, YellowConcreteID},
		{RGB{94, 169, 24}, LimeConcreteID},
		{RGB{73, 91, 36}, GreenConcreteID},
		{RGB{21, 119, 136}, CyanConcreteID},
		{RGB{36, 137, 199}, LightBlueConcreteID},
		{RGB{45, 47, 143}, BlueConcreteID},
		{RGB{100, 32, 156}, PurpleConcreteID},
		{RGB{169, 48, 159}, MagentaConcreteID},
		{RGB{214, 101, 143}, PinkConcreteID},
		{RGB{209, 178, 161}, WhiteTerracottaID},
		{RGB{135, 107, 98}, LightGrayTerracottaID},
		{RGB{57, 42, 35}, GrayTerracottaID},
		{RGB{150, 88, 36}, BricksBlockID},
		{RGB{223, 216, 165}, SmoothSandstoneID},
		{RGB{235, 229, 222}, QuartzBlockID},
	}
}

// FloorColorMap возвращает карту цветов для подбора блока крыши по тегу
func FloorColorMap() []ColorMapping {
	return []ColorMapping{
		{RGB{207, 213, 214}, WhiteConcreteID},
		{RGB{125, 125, 115}, LightGrayConcreteID},
		{RGB{55, 58, 62}, GrayConcreteID},
		{RGB{8, 10, 15}, BlackConcreteID},
		{RGB{96, 60, 32}, BrownConcreteID},
		{RGB{142, 33, 33}, RedConcreteID},
		{RGB{224, 97, 1}, OrangeConcreteID},
		{RGB{241, 175, 21}, YellowConcreteID},
		{RGB{73, 91, 36}, GreenConcreteID},
		{RGB{45, 47, 143}, BlueConcreteID},
		{RGB{143, 61, 47}, RedTerracottaID},
		{RGB{161, 83, 37}, OrangeTerracottaID},
		{RGB{186, 133, 35}, YellowTerracottaID},
		{RGB{76, 83, 42}, GreenTerracottaID},
		{RGB{87, 91, 91}, CyanTerracottaID},
		{RGB{74, 60, 91}, BlueTerracottaID},
		{RGB{77, 51, 35}, BrownTerracottaID},
		{RGB{67, 45, 32}, DarkOakPlanksBlockID},
		{RGB{115, 85, 49}, SprucePlanksBlockID},
	}
}

// FindNearestByColor возвращает блок каталога, ближайший к цвету по
// квадрату расстояния RGB. При равенстве побеждает первый минимум в
// порядке каталога. Для пустого каталога совпадения нет.
func FindNearestByColor(target RGB, colorMap []ColorMapping) (BlockID, bool) {
	if len(colorMap) == 0 {
		return AirBlockID, false
	}

	best := colorMap[0].Block
	bestDistance := RGBDistance(target, colorMap[0].Color)

	for _, mapping := range colorMap[1:] {
		if distance := RGBDistance(target, mapping.Color); distance < bestDistance {
			best = mapping.Block
			bestDistance = distance
		}
	}

	return best, true
}
