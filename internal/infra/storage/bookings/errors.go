package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrStorage возвращается при ошибках обращения к хранилищу
	ErrStorage = errors.New("bookings.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("bookings.repository: failed to encode collection")
)
