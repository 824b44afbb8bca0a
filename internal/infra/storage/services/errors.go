package services

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("services.repository: service not found")

	// ErrStorage возвращается при ошибках обращения к хранилищу
	ErrStorage = errors.New("services.repository: storage error")
)
