package block

import (
	"strconv"
	"strings"
)

// RGB представляет цвет в формате красный/зелёный/синий
type RGB struct {
	R, G, B uint8
}

// Таблица именованных цветов для тегов building:colour / roof:colour
var namedColors = map[string]RGB{
	"white":       {255, 255, 255},
	"black":       {0, 0, 0},
	"gray":        {128, 128, 128},
	"grey":        {128, 128, 128},
	"silver":      {192, 192, 192},
	"lightgray":   {211, 211, 211},
	"lightgrey":   {211, 211, 211},
	"darkgray":    {169, 169, 169},
	"darkgrey":    {169, 169, 169},
	"red":         {255, 0, 0},
	"darkred":     {139, 0, 0},
	"maroon":      {128, 0, 0},
	"green":       {0, 128, 0},
	"darkgreen":   {0, 100, 0},
	"lime":        {0, 255, 0},
	"olive":       {128, 128, 0},
	"blue":        {0, 0, 255},
	"navy":        {0, 0, 128},
	"lightblue":   {173, 216, 230},
	"cyan":        {0, 255, 255},
	"teal":        {0, 128, 128},
	"yellow":      {255, 255, 0},
	"gold":        {255, 215, 0},
	"orange":      {255, 165, 0},
	"brown":       {165, 42, 42},
	"saddlebrown": {139, 69, 19},
	"tan":         {210, 180, 140},
	"beige":       {245, 245, 220},
	"cream":       {255, 253, 208},
	"ivory":       {255, 255, 240},
	"pink":        {255, 192, 203},
	"salmon":      {250, 128, 114},
	"magenta":     {255, 0, 255},
	"purple":      {128, 0, 128},
	"violet":      {238, 130, 238},
}

// ParseColorText разбирает значение цветового тега в RGB.
// Поддерживаются формы "#RGB", "#RRGGBB" и именованные цвета.
// Неразборчивое значение трактуется как отсутствие тега.
func ParseColorText(text string) (RGB, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(text, "#") {
		return parseHexColor(text[1:])
	}

	if rgb, ok := namedColors[text]; ok {
		return rgb, true
	}

	return RGB{}, false
}

// parseHexColor разбирает шестнадцатеричную запись цвета без решётки
func parseHexColor(hex string) (RGB, bool) {
	switch len(hex) {
	case 3:
		// Короткая форма: каждая цифра удваивается
		r, errR := strconv.ParseUint(strings.Repeat(string(hex[0]), 2), 16, 8)
		g, errG := strconv.ParseUint(strings.Repeat(string(hex[1]), 2), 16, 8)
		b, errB := strconv.ParseUint(strings.Repeat(string(hex[2]), 2), 16, 8)
		if errR != nil || errG != nil || errB != nil {
			return RGB{}, false
		}
		return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
	case 6:
		r, errR := strconv.ParseUint(hex[0:2], 16, 8)
		g, errG := strconv.ParseUint(hex[2:4], 16, 8)
		b, errB := strconv.ParseUint(hex[4:6], 16, 8)
		if errR != nil || errG != nil || errB != nil {
			return RGB{}, false
		}
		return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
	default:
		return RGB{}, false
	}
}

// RGBDistance возвращает квадрат евклидова расстояния между двумя цветами
func RGBDistance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
