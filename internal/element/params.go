package element

import (
	"math"
	"strconv"
	"strings"

	"github.com/annel0/osm-worldgen/internal/ground"
	"github.com/annel0/osm-worldgen/internal/osm"
)

// Сколько вокселов приходится на один этаж здания
const storyHeight = 4

// buildingParams содержит производные параметры одного здания.
// Запись создаётся заново на каждый вызов генерации и отбрасывается
// после завершения.
type buildingParams struct {
	BaseY  int // Высота поверхности под зданием
	StartY int // Высота начала стен (с учётом building:min_level)
	Height int // Полная высота здания, всегда >= 3

	minLevel      int
	defaultHeight int // Высота до применения тегов; нужна веткам подтипов
}

// heightUntouched сообщает, осталась ли высота на значении по умолчанию.
// Ветки apartments/hospital назначают свою высоту только в этом случае.
func (p *buildingParams) heightUntouched() bool {
	return p.Height == p.defaultHeight
}

// deriveParams вычисляет параметры здания из тегов контура.
//
// Возвращает false, когда здание размещать нельзя: высота поверхности
// неразрешима либо теги layer/level объявляют подземный элемент. Оба
// случая — штатный молчаливый пропуск, не ошибка.
func deriveParams(way *osm.Way, g ground.Ground, scale float64, relationLevels *int) (buildingParams, bool) {
	baseY, ok := g.MinLevel(way.Columns())
	if !ok {
		return buildingParams{}, false
	}

	// Подземные элементы не строим
	if tagInt(way, "layer", 0) < 0 || tagInt(way, "level", 0) < 0 {
		return buildingParams{}, false
	}

	minLevel := tagInt(way, "building:min_level", 0)

	params := buildingParams{
		BaseY:         baseY,
		StartY:        baseY + minLevel*storyHeight,
		Height:        scaledHeight(6, scale),
		minLevel:      minLevel,
		defaultHeight: scaledHeight(6, scale),
	}

	// Каждый следующий источник высоты перекрывает предыдущий,
	// когда присутствует и корректен.
	if levelsStr, ok := way.Tag("building:levels"); ok {
		if levels, err := strconv.Atoi(strings.TrimSpace(levelsStr)); err == nil {
			if stories := levels - minLevel; stories >= 1 {
				params.Height = scaledHeight(float64(stories*storyHeight+2), scale)
			}
		}
	}

	if heightStr, ok := way.Tag("height"); ok {
		if height, ok := parseHeightValue(heightStr); ok {
			params.Height = scaledHeight(height, scale)
		}
	}

	if relationLevels != nil {
		params.Height = scaledHeight(float64(*relationLevels*storyHeight+2), scale)
	}

	return params, true
}

// scaledHeight масштабирует высоту и ограничивает её снизу тремя вокселами
func scaledHeight(height, scale float64) int {
	scaled := int(math.Round(height * scale))
	if scaled < 3 {
		return 3
	}
	return scaled
}

// tagInt возвращает целочисленное значение тега.
// Отсутствующее или неразборчивое значение даёт значение по умолчанию.
func tagInt(way *osm.Way, key string, def int) int {
	value, ok := way.Tag(key)
	if !ok {
		return def
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

// parseIntValue разбирает целочисленное значение тега
func parseIntValue(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// parseHeightValue разбирает значение тега height.
// Хвостовой суффикс единицы измерения ("12m") отбрасывается.
func parseHeightValue(value string) (float64, bool) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "m"))

	height, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}
