package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.repository: user not found")

	// ErrStorage возвращается при ошибках обращения к хранилищу
	ErrStorage = errors.New("users.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("users.repository: failed to encode collection")
)
