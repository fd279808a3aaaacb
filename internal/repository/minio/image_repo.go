package minio

import (
	"context"
	"net/url"

	"github.com/DRSN-tech/automarket-backend/internal/cfg"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo разрешает ключи объектов MinIO в публичные URL изображений.
// Нужен нормализатору изображений для legacy-записей, где клиенты
// сохраняли только ключ хранилища вместо готового URL.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// ResolveURL разрешает ключ объекта в presigned GET-URL.
// Срок жизни ссылки задаётся конфигурацией; ссылка попадает в проекцию
// и обновляется при каждой пересборке.
func (i *ImageRepo) ResolveURL(ctx context.Context, storageKey string) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, storageKey, i.cfg.URLLifetime, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
