package domain

// ListingStatus — внутренний статус публикации записи в MASTER.
type ListingStatus string

const (
	StatusDraft     ListingStatus = "draft"
	StatusPublished ListingStatus = "published"
	StatusArchived  ListingStatus = "archived"
)

// ExternalStatus — внешнее трёхзначное представление статуса публикации.
type ExternalStatus string

const (
	ExternalDraft     ExternalStatus = "DRAFT"
	ExternalHidden    ExternalStatus = "HIDDEN"
	ExternalPublished ExternalStatus = "PUBLISHED"
)

// statusFromExternal — единственная таблица соответствия внешнего статуса внутреннему.
// HIDDEN отображается в archived: скрытое объявление снимается с витрины,
// но остаётся восстановимым владельцем.
var statusFromExternal = map[ExternalStatus]ListingStatus{
	ExternalPublished: StatusPublished,
	ExternalHidden:    StatusArchived,
	ExternalDraft:     StatusDraft,
}

// StatusFromExternal переводит внешний статус во внутренний.
// Таблица тотальна: все три внешних значения имеют отображение.
func StatusFromExternal(ext ExternalStatus) (ListingStatus, bool) {
	status, ok := statusFromExternal[ext]
	return status, ok
}

// IsValid сообщает, является ли значение одним из трёх внутренних статусов.
func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}
