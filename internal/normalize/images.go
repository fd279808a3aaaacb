package normalize

import (
	"encoding/json"
	"sort"
	"strings"
)

// ProjectionImageCap — максимум изображений в публичной проекции.
// Полный список сохраняется только в MASTER.
const ProjectionImageCap = 5

// ImageSet — каноническое представление изображений объявления.
// StorageKeys перечисляет дескрипторы без готового URL (только ключ объекта
// в хранилище); их разрешает репозиторий изображений при сборке проекции.
type ImageSet struct {
	ImageURLs    []string
	StorageKeys  []string
	MainImageURL *string
	ImagesCount  int
}

// imageRef — один дескриптор изображения после извлечения.
type imageRef struct {
	url      string
	key      string
	order    int
	hasOrder bool
	pos      int // входная позиция, для стабильности сортировки
}

// NormalizeImages сводит все исторические формы хранения изображений
// к одному упорядоченному списку. Принимаемые формы, в порядке приоритета:
//
//	(a) явное числовое поле количества (используется для ImagesCount);
//	(b) нативный список дескрипторов изображений;
//	(c) сериализованный в строку JSON-список дескрипторов (толерантный разбор,
//	    непригодный текст даёт пустой список);
//	(d) плоский список строк-URL;
//	(e) вложенные обёртки {images:[...]} / {data:[...]}.
//
// Порядок элементов задаётся явным полем order, если оно есть, иначе
// сохраняется входной порядок. Функция никогда не паникует.
func NormalizeImages(raw RawRecord) ImageSet {
	refs := extractRefs(rawImagesValue(raw))

	// Стабильная сортировка: элементы с order — по возрастанию order,
	// элементы без order остаются во входном порядке после них.
	sort.SliceStable(refs, func(i, j int) bool {
		switch {
		case refs[i].hasOrder && refs[j].hasOrder:
			return refs[i].order < refs[j].order
		case refs[i].hasOrder != refs[j].hasOrder:
			return refs[i].hasOrder
		default:
			return refs[i].pos < refs[j].pos
		}
	})

	set := ImageSet{}
	for _, ref := range refs {
		switch {
		case ref.url != "":
			set.ImageURLs = append(set.ImageURLs, ref.url)
		case ref.key != "":
			set.StorageKeys = append(set.StorageKeys, ref.key)
		}
	}

	if url, ok := stringField(raw, "mainImageUrl", "main_image_url", "coverUrl"); ok {
		set.MainImageURL = &url
	} else if len(set.ImageURLs) > 0 {
		set.MainImageURL = &set.ImageURLs[0]
	}

	if count, ok := intField(raw, "imagesCount", "images_count", "photoCount"); ok && count >= 0 {
		set.ImagesCount = count
	} else {
		set.ImagesCount = len(set.ImageURLs) + len(set.StorageKeys)
	}

	return set
}

// rawImagesValue находит контейнер списка изображений среди известных ключей.
func rawImagesValue(raw RawRecord) any {
	for _, key := range []string{"images", "imageUrls", "image_urls", "photos", "pictures"} {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// extractRefs разбирает контейнер любой исторической формы в список дескрипторов.
func extractRefs(value any) []imageRef {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return refsFromList(v)
	case string:
		// Сериализованный список: толерантный разбор, мусор даёт пустой список
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil
		}
		if _, again := parsed.(string); again {
			return nil // строка в строке — дальше не разворачиваем
		}
		return extractRefs(parsed)
	case map[string]any:
		// Обёртки {images:[...]} / {data:[...]}
		for _, key := range []string{"images", "data", "items"} {
			if inner, ok := v[key]; ok {
				return extractRefs(inner)
			}
		}
		return nil
	default:
		return nil
	}
}

func refsFromList(list []any) []imageRef {
	refs := make([]imageRef, 0, len(list))
	for i, item := range list {
		switch t := item.(type) {
		case string:
			// Плоский список URL-строк
			if url := strings.TrimSpace(t); url != "" {
				refs = append(refs, imageRef{url: url, pos: i})
			}
		case map[string]any:
			if ref, ok := refFromDescriptor(RawRecord(t), i); ok {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// refFromDescriptor разбирает один дескриптор изображения.
// Дескриптор без URL и без ключа хранилища отбрасывается.
func refFromDescriptor(desc RawRecord, pos int) (imageRef, bool) {
	ref := imageRef{pos: pos}
	ref.url, _ = stringField(desc, "url", "imageUrl", "image_url", "downloadUrl", "src")
	ref.key, _ = stringField(desc, "storageKey", "storage_key", "objectKey", "path")

	if order, ok := intField(desc, "order", "position", "index"); ok {
		ref.order = order
		ref.hasOrder = true
	}

	if ref.url == "" && ref.key == "" {
		return imageRef{}, false
	}
	return ref, true
}
