// Package normalize сводит исторические формы документа объявления
// к каноническому статусу публикации и списку изображений.
//
// Входные документы накоплены несколькими поколениями клиентов и не имеют
// единой схемы, поэтому каждая форма описана отдельным типизированным
// экстрактором с документированным предусловием. Экстракторы чистые и
// комбинируются по принципу «первое совпадение выигрывает». Нормализация
// никогда не паникует: непригодный вход даёт безопасное значение по умолчанию,
// диагностикой занимается вызывающая сторона.
package normalize

import "strings"

// RawRecord — исторический документ объявления (декодированный JSON).
type RawRecord map[string]any

// stringField возвращает первое непустое строковое значение по списку ключей.
func stringField(raw RawRecord, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}

// boolField возвращает первое булево значение по списку ключей.
// Строковые "true"/"false" старых клиентов тоже принимаются.
func boolField(raw RawRecord, keys ...string) (bool, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t, true
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "1", "yes":
				return true, true
			case "false", "0", "no":
				return false, true
			}
		}
	}
	return false, false
}

// intField возвращает первое целочисленное значение по списку ключей.
// JSON-числа приходят как float64, старые клиенты писали и строки.
func intField(raw RawRecord, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return int(t), true
		case int:
			return t, true
		case int64:
			return int(t), true
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				continue
			}
			n := 0
			valid := true
			for _, r := range s {
				if r < '0' || r > '9' {
					valid = false
					break
				}
				n = n*10 + int(r-'0')
			}
			if valid {
				return n, true
			}
		}
	}
	return 0, false
}
