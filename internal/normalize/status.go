package normalize

import (
	"strings"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

// DefaultStatus — системное значение по умолчанию для записей, статус которых
// не удалось вывести ни одним экстрактором. Опубликовано — для обратной
// совместимости с самыми старыми данными, созданными до появления статусов.
const DefaultStatus = domain.StatusPublished

// statusAliases — свободно-текстовые исторические значения статуса.
var statusAliases = map[string]domain.ListingStatus{
	"active":      domain.StatusPublished,
	"live":        domain.StatusPublished,
	"visible":     domain.StatusPublished,
	"on_sale":     domain.StatusPublished,
	"hidden":      domain.StatusArchived,
	"paused":      domain.StatusArchived,
	"inactive":    domain.StatusArchived,
	"sold":        domain.StatusArchived,
	"new":         domain.StatusDraft,
	"pending":     domain.StatusDraft,
	"in_progress": domain.StatusDraft,
}

// ResolveStatus выводит статус публикации из исторического документа.
// Детерминированная тотальная функция без побочных эффектов; порядок
// экстракторов фиксирован, первое совпадение выигрывает:
//  1. явное нормализованное поле status;
//  2. внешнее трёхзначное поле (DRAFT/HIDDEN/PUBLISHED);
//  3. булевы флаги isHidden/isPublished;
//  4. свободно-текстовые легаси-поля статуса;
//  5. эвристика по содержимому (марка+модель и хотя бы одно фото → published).
//
// Пустой или непригодный документ даёт DefaultStatus.
func ResolveStatus(raw RawRecord) domain.ListingStatus {
	if len(raw) == 0 {
		return DefaultStatus
	}

	if status, ok := normalizedStatus(raw); ok {
		return status
	}
	if status, ok := externalStatus(raw); ok {
		return status
	}
	if status, ok := legacyFlags(raw); ok {
		return status
	}
	if status, ok := legacyAliases(raw); ok {
		return status
	}

	return contentHeuristic(raw)
}

// normalizedStatus: явное поле status с одним из трёх внутренних значений.
func normalizedStatus(raw RawRecord) (domain.ListingStatus, bool) {
	s, ok := stringField(raw, "status")
	if !ok {
		return "", false
	}

	status := domain.ListingStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", false
	}
	return status, true
}

// externalStatus: внешнее трёхзначное представление, отображаемое
// через единственную фиксированную таблицу domain.StatusFromExternal.
func externalStatus(raw RawRecord) (domain.ListingStatus, bool) {
	s, ok := stringField(raw, "publicationStatus", "publication_status")
	if !ok {
		return "", false
	}

	return domain.StatusFromExternal(domain.ExternalStatus(strings.ToUpper(s)))
}

// legacyFlags: булевы флаги isHidden/isPublished старых клиентов.
// isHidden имеет приоритет: скрытое объявление скрыто независимо от isPublished.
func legacyFlags(raw RawRecord) (domain.ListingStatus, bool) {
	hidden, hasHidden := boolField(raw, "isHidden", "is_hidden")
	published, hasPublished := boolField(raw, "isPublished", "is_published")

	switch {
	case hasHidden && hidden:
		return domain.StatusArchived, true
	case hasPublished:
		if published {
			return domain.StatusPublished, true
		}
		return domain.StatusDraft, true
	case hasHidden: // isHidden=false без isPublished
		return domain.StatusPublished, true
	default:
		return "", false
	}
}

// legacyAliases: свободно-текстовые легаси-поля статуса, с нормализацией регистра.
func legacyAliases(raw RawRecord) (domain.ListingStatus, bool) {
	s, ok := stringField(raw, "status", "state", "listingStatus", "listing_status", "adStatus")
	if !ok {
		return "", false
	}

	status, ok := statusAliases[strings.ToLower(strings.ReplaceAll(s, " ", "_"))]
	return status, ok
}

// contentHeuristic: запись с идентификацией (марка и модель) и хотя бы одним
// изображением считается опубликованной, иначе — черновиком.
func contentHeuristic(raw RawRecord) domain.ListingStatus {
	_, hasBrand := stringField(raw, "brand", "make")
	_, hasModel := stringField(raw, "model")

	if hasBrand && hasModel && NormalizeImages(raw).ImagesCount > 0 {
		return domain.StatusPublished
	}
	return domain.StatusDraft
}
