package bookings

import (
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Переиспользуем интерфейс хранилища из kvstore
type Store = kvstore.Store
