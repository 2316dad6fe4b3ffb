package imagesearch

import (
	"math"
	"strconv"
	"strings"
)

// colorDistanceThreshold - максимальная евклидова дистанция в RGB,
// при которой два цвета считаются близкими. Подобрано грубо: треть
// диагонали цветового куба.
const colorDistanceThreshold = 150.0

// parseHexColor разбирает цвет вида "#RRGGBB" или "#RGB".
// Невалидный цвет возвращает ok=false и пропускается в скоринге.
func parseHexColor(s string) (r, g, b float64, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		// полная форма
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	default:
		return 0, 0, 0, false
	}

	rv, err1 := strconv.ParseUint(s[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(s[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return float64(rv), float64(gv), float64(bv), true
}

// colorsClose проверяет близость двух hex-цветов по евклидовой дистанции в RGB.
func colorsClose(a, b string) bool {
	ar, ag, ab, ok := parseHexColor(a)
	if !ok {
		return false
	}
	br, bg, bb, ok := parseHexColor(b)
	if !ok {
		return false
	}
	dr, dg, db := ar-br, ag-bg, ab-bb
	return math.Sqrt(dr*dr+dg*dg+db*db) <= colorDistanceThreshold
}

// anyColorClose - есть ли в палитре цвет, близкий хотя бы к одному из wanted.
func anyColorClose(palette, wanted []string) bool {
	for _, p := range palette {
		for _, w := range wanted {
			if colorsClose(p, w) {
				return true
			}
		}
	}
	return false
}
