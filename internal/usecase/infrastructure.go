package usecase

import "context"

// ImageURLResolver разрешает ключ объекта в хранилище изображений
// в публичный URL для витрины.
type ImageURLResolver interface {
	ResolveURL(ctx context.Context, storageKey string) (string, error)
}

// MessageProducer публикует события изменения объявлений во внешнюю шину.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
