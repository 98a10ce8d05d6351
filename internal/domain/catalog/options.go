package catalog

import "strings"

// ParseSize は文字列をSizeOptionにパース（大文字小文字を無視）
// 未知の表記は空のSizeOptionを返す
func ParseSize(s string) SizeOption {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tall", "톨":
		return SizeTall
	case "grande", "그란데":
		return SizeGrande
	case "venti", "벤티":
		return SizeVenti
	}
	return ""
}

// ParseTemperature は文字列をTemperatureOptionにパース（大文字小文字を無視）
// 未知の表記は空のTemperatureOptionを返す
func ParseTemperature(s string) TemperatureOption {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hot", "핫", "따뜻한":
		return TemperatureHot
	case "ice", "iced", "아이스":
		return TemperatureIce
	}
	return ""
}
