package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"startuphub/internal/mockapi/adapters/store"
	"startuphub/internal/mockapi/domain"
	"startuphub/pkg/logger"
)

// Константы сообщений сервиса участников.
const (
	LogServiceSignUp   = "member service: sign up"
	LogServiceUpdate   = "member service: update"
	LogServiceUpdatePw = "member service: update password"

	ErrorSignUpFailed = "sign up failed"
	ErrorUpdateFailed = "member update failed"
)

// MemberService выполняет операции над участниками.
type MemberService struct {
	store *store.MemberStore
}

// NewMemberService создает сервис участников.
func NewMemberService(memberStore *store.MemberStore) *MemberService {
	return &MemberService{store: memberStore}
}

// SignUp регистрирует участника с хэшированием пароля.
func (s *MemberService) SignUp(ctx context.Context, member *domain.Member, password string) error {
	logger.Log(ctx).Info(ctx, LogServiceSignUp, zap.String("user_id", member.UserID))

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorSignUpFailed, err)
	}
	member.PasswordHash = hash

	if err := s.store.Create(ctx, member); err != nil {
		return fmt.Errorf("%s: %w", ErrorSignUpFailed, err)
	}

	return nil
}

// Get возвращает участника.
func (s *MemberService) Get(ctx context.Context, userID string) (*domain.Member, error) {
	member, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}
	return member, nil
}

// Update обновляет профиль участника, не трогая хэш пароля.
func (s *MemberService) Update(ctx context.Context, member *domain.Member) error {
	logger.Log(ctx).Info(ctx, LogServiceUpdate, zap.String("user_id", member.UserID))

	current, err := s.store.Get(ctx, member.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	member.PasswordHash = current.PasswordHash

	if err := s.store.Update(ctx, member); err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	return nil
}

// CountUserID возвращает число участников с указанным идентификатором.
func (s *MemberService) CountUserID(ctx context.Context, userID string) (int, error) {
	n, err := s.store.CountUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}
	return n, nil
}

// CountUserEmail возвращает число участников с указанной почтой.
func (s *MemberService) CountUserEmail(ctx context.Context, userEmail string) (int, error) {
	n, err := s.store.CountUserEmail(ctx, userEmail)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}
	return n, nil
}

// CheckPassword сверяет пароль участника с хэшем.
func (s *MemberService) CheckPassword(ctx context.Context, userID, password string) (bool, error) {
	member, err := s.store.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}

// UpdatePassword меняет пароль участника и отзывает его refresh-токен.
func (s *MemberService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	logger.Log(ctx).Info(ctx, LogServiceUpdatePw, zap.String("user_id", userID))

	member, err := s.store.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}
	member.PasswordHash = hash

	if err := s.store.Update(ctx, member); err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	if err := s.store.DeleteRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrorUpdateFailed, err)
	}

	return nil
}
