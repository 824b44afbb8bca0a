package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zenya-app/Zenya-BookingService/internal/domain"
	usersRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/users"
	"github.com/zenya-app/Zenya-BookingService/internal/service/auth/models"
)

const minPasswordLength = 6

// Claims полезная нагрузка токена
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Service демо-сервис аутентификации.
// Пароли не хранятся и не проверяются: любой корректно оформленный
// email с паролем достаточной длины проходит. Это иллюзия аутентификации
// для демо, а не защита.
type Service struct {
	userRepo       UserRepository
	timeProvider   TimeProvider
	logger         Logger
	secret         []byte
	tokenTTL       time.Duration
	simulatedDelay time.Duration
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	logger Logger,
	secret string,
	tokenTTL time.Duration,
	simulatedDelay time.Duration,
) *Service {
	return &Service{
		userRepo:       userRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		secret:         []byte(secret),
		tokenTTL:       tokenTTL,
		simulatedDelay: simulatedDelay,
	}
}

// Login выполняет вход.
// Перед ответом выдерживается фиксированная задержка (имитация сетевого
// вызова), без отмены и без таймаута. Если пользователь с таким email
// не найден, создаётся временный customer-пользователь - он не сохраняется.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	time.Sleep(s.simulatedDelay)

	if err := validateCredentials(req.Email, req.Password); err != nil {
		s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
		}

		// Имя выводится из email, как в демо-версии UI
		user = &domain.User{
			ID:    uuid.NewString(),
			Name:  strings.SplitN(req.Email, "@", 2)[0],
			Email: req.Email,
			Role:  domain.RoleCustomer,
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful for user id=%s", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// Register регистрирует нового пользователя и сразу выдает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: email=%s", req.Email)

	time.Sleep(s.simulatedDelay)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCredentials)
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		s.logger.Warn("Register: invalid credentials for email=%s", req.Email)
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("Register: email=%s already taken", req.Email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, usersRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.RoleCustomer,
	})
	if err != nil {
		s.logger.Error("Register: failed to create user for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Register: failed to issue token for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%s", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// CurrentUser возвращает "текущего" пользователя демо-окружения:
// первого администратора коллекции, а без администраторов - первого
// пользователя
func (s *Service) CurrentUser(ctx context.Context) (*models.UserResponse, error) {
	user, err := s.userRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("CurrentUser: users collection is empty")
			return nil, ErrUserNotFound
		}
		s.logger.Error("CurrentUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: CurrentUser - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainUser(user)
	return &resp, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// issueToken выдает подписанный HS256 токен для пользователя
func (s *Service) issueToken(user *domain.User) (string, error) {
	now := s.timeProvider.Now()

	claims := &Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// validateCredentials проверяет, что учетные данные корректно оформлены
func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: malformed email", ErrInvalidCredentials)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password too short", ErrInvalidCredentials)
	}

	return nil
}
