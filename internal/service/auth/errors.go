package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при некорректных учетных данных
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidToken возвращается при невалидном или истекшем токене
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
