package block

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID             BlockID = iota // 0
	StoneBlockID                          // 1
	CobblestoneBlockID                    // 2
	MossyCobblestoneID                    // 3
	SmoothStoneBlockID                    // 4
	StoneBricksBlockID                    // 5
	BricksBlockID                         // 6
	SandstoneBlockID                      // 7
	SmoothSandstoneID                     // 8
	PolishedAndesiteID                    // 9
	PolishedBlackstoneID                  // 10
	NetherBricksBlockID                   // 11
	QuartzBlockID                         // 12
	OakPlanksBlockID                      // 13
	DarkOakPlanksBlockID                  // 14
	SprucePlanksBlockID                   // 15
	EndStoneBricksBlockID                 // 16
	PolishedDioriteID                     // 17
	MudBricksBlockID                      // 18

	// Для возможности расширения, оставляем большие промежутки между категориями

	// Декоративные и частичные блоки (начиная с 100)
	StoneBrickSlabID   BlockID = 100 // Плита из каменного кирпича
	SmoothStoneSlabID  BlockID = 101 // Плита из гладкого камня
	CobblestoneWallID  BlockID = 102 // Булыжниковая стенка
	OakFenceBlockID    BlockID = 103 // Дубовый забор
	GlowstoneBlockID   BlockID = 104 // Светокамень
	SnowLayerBlockID   BlockID = 105 // Слой снега
	WhiteStainedGlass  BlockID = 106 // Белое окрашенное стекло
	GrayStainedGlass   BlockID = 107 // Серое окрашенное стекло
	DarkOakDoorLowerID BlockID = 108 // Дверь из тёмного дуба, нижняя половина
	DarkOakDoorUpperID BlockID = 109 // Дверь из тёмного дуба, верхняя половина

	// Бетон (начиная с 200)
	WhiteConcreteID     BlockID = 200
	LightGrayConcreteID BlockID = 201
	GrayConcreteID      BlockID = 202
	BlackConcreteID     BlockID = 203
	BrownConcreteID     BlockID = 204
	RedConcreteID       BlockID = 205
	OrangeConcreteID    BlockID = 206
	YellowConcreteID    BlockID = 207
	LimeConcreteID      BlockID = 208
	GreenConcreteID     BlockID = 209
	CyanConcreteID      BlockID = 210
	LightBlueConcreteID BlockID = 211
	BlueConcreteID      BlockID = 212
	PurpleConcreteID    BlockID = 213
	MagentaConcreteID   BlockID = 214
	PinkConcreteID      BlockID = 215

	// Терракота (начиная с 300)
	WhiteTerracottaID     BlockID = 300
	LightGrayTerracottaID BlockID = 301
	GrayTerracottaID      BlockID = 302
	BrownTerracottaID     BlockID = 303
	RedTerracottaID       BlockID = 304
	OrangeTerracottaID    BlockID = 305
	YellowTerracottaID    BlockID = 306
	GreenTerracottaID     BlockID = 307
	CyanTerracottaID      BlockID = 308
	BlueTerracottaID      BlockID = 309
)

// Регистрируем все типы блоков при инициализации пакета
func init() {
	Register(AirBlockID, "air")
	Register(StoneBlockID, "stone")
	Register(CobblestoneBlockID, "cobblestone")
	Register(MossyCobblestoneID, "mossy_cobblestone")
	Register(SmoothStoneBlockID, "smooth_stone")
	Register(StoneBricksBlockID, "stone_bricks")
	Register(BricksBlockID, "bricks")
	Register(SandstoneBlockID, "sandstone")
	Register(SmoothSandstoneID, "smooth_sandstone")
	Register(PolishedAndesiteID, "polished_andesite")
	Register(PolishedBlackstoneID, "polished_blackstone")
	Register(NetherBricksBlockID, "nether_bricks")
	Register(QuartzBlockID, "quartz_block")
	Register(OakPlanksBlockID, "oak_planks")
	Register(DarkOakPlanksBlockID, "dark_oak_planks")
	Register(SprucePlanksBlockID, "spruce_planks")
	Register(EndStoneBricksBlockID, "end_stone_bricks")
	Register(PolishedDioriteID, "polished_diorite")
	Register(MudBricksBlockID, "mud_bricks")

	Register(StoneBrickSlabID, "stone_brick_slab")
	Register(SmoothStoneSlabID, "smooth_stone_slab")
	Register(CobblestoneWallID, "cobblestone_wall")
	Register(OakFenceBlockID, "oak_fence")
	Register(GlowstoneBlockID, "glowstone")
	Register(SnowLayerBlockID, "snow_layer")
	Register(WhiteStainedGlass, "white_stained_glass")
	Register(GrayStainedGlass, "gray_stained_glass")
	Register(DarkOakDoorLowerID, "dark_oak_door_lower")
	Register(DarkOakDoorUpperID, "dark_oak_door_upper")

	Register(WhiteConcreteID, "white_concrete")
	Register(LightGrayConcreteID, "light_gray_concrete")
	Register(GrayConcreteID, "gray_concrete")
	Register(BlackConcreteID, "black_concrete")
	Register(BrownConcreteID, "brown_concrete")
	Register(RedConcreteID, "red_concrete")
	Register(OrangeConcreteID, "orange_concrete")
	Register(YellowConcreteID, "yellow_concrete")
	Register(LimeConcreteID, "lime_concrete")
	Register(GreenConcreteID, "green_concrete")
	Register(CyanConcreteID, "cyan_concrete")
	Register(LightBlueConcreteID, "light_blue_concrete")
	Register(BlueConcreteID, "blue_concrete")
	Register(PurpleConcreteID, "purple_concrete")
	Register(MagentaConcreteID, "magenta_concrete")
	Register(PinkConcreteID, "pink_concrete")

	Register(WhiteTerracottaID, "white_terracotta")
	Register(LightGrayTerracottaID, "light_gray_terracotta")
	Register(GrayTerracottaID, "gray_terracotta")
	Register(BrownTerracottaID, "brown_terracotta")
	Register(RedTerracottaID, "red_terracotta")
	Register(OrangeTerracottaID, "orange_terracotta")
	Register(YellowTerracottaID, "yellow_terracotta")
	Register(GreenTerracottaID, "green_terracotta")
	Register(CyanTerracottaID, "cyan_terracotta")
	Register(BlueTerracottaID, "blue_terracotta")
}
