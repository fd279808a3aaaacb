package domain

import "strings"

// Slug приводит текст к URL-безопасному идентификатору:
// нижний регистр, не-алфавитно-цифровые символы схлопываются в дефис.
func Slug(text string) string {
	var b strings.Builder
	lastDash := true // подавляем ведущий дефис
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "unknown"
	}
	return slug
}

// BrandID возвращает стабильный идентификатор марки.
func BrandID(brand string) string {
	return Slug(brand)
}

// ModelID возвращает стабильный идентификатор модели в пределах марки.
func ModelID(brand, model string) string {
	return BrandID(brand) + ":" + Slug(model)
}
