package get_current_user

import (
	"context"

	"github.com/zenya-app/Zenya-BookingService/internal/service/auth/models"
)

type AuthService interface {
	CurrentUser(ctx context.Context) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
