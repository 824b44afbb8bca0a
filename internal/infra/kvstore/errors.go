package kvstore

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kvstore: key not found")

	// ErrLoad возвращается при ошибке чтения из хранилища
	ErrLoad = errors.New("kvstore: failed to load key")

	// ErrSave возвращается при ошибке записи в хранилище
	ErrSave = errors.New("kvstore: failed to save key")

	// ErrDelete возвращается при ошибке удаления ключа
	ErrDelete = errors.New("kvstore: failed to delete key")
)
