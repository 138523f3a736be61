// Package services реализует прикладные сервисы поверх конвейера
// запросов.
package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/api"
	"startuphub/pkg/logger"
)

// Сообщения журнала сервиса участников.
const (
	LogMemberSignUp     = "signing up member"
	LogMemberGet        = "fetching member"
	LogMemberUpdate     = "updating member"
	LogMemberPwUpdate   = "updating member password"
	LogMemberFindUserID = "requesting user id recovery"
	LogMemberFindUserPw = "requesting password recovery"
)

// Сообщения об ошибках сервиса участников.
const (
	ErrorMemberCall   = "member api call failed"
	ErrorMemberDecode = "failed to decode member payload"
)

// MemberAPI реализует api.MemberService.
type MemberAPI struct {
	client api.Client
}

// NewMemberAPI создает сервис участников.
func NewMemberAPI(client api.Client) *MemberAPI {
	return &MemberAPI{client: client}
}

// SignUp регистрирует нового участника.
func (m *MemberAPI) SignUp(ctx context.Context, member *dto.Member) error {
	logger.Log(ctx).Info(ctx, LogMemberSignUp, zap.String("user_id", member.UserID))

	req := api.NewRequest(http.MethodPost, "/member/signup")
	req.Body = member

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	return nil
}

// CheckUserID возвращает число участников с указанным идентификатором.
func (m *MemberAPI) CheckUserID(ctx context.Context, userID string) (int, error) {
	req := api.NewRequest(http.MethodGet, "/member/checkUserId/"+userID)

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var count int
	if err := resp.Envelope.DecodeResData(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return count, nil
}

// CheckUserEmail возвращает число участников с указанной почтой.
func (m *MemberAPI) CheckUserEmail(ctx context.Context, userEmail string) (int, error) {
	req := api.NewRequest(http.MethodGet, "/member/checkUserEmail/"+userEmail)

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var count int
	if err := resp.Envelope.DecodeResData(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return count, nil
}

// GetMember возвращает профиль участника.
func (m *MemberAPI) GetMember(ctx context.Context, userID string) (*dto.Member, error) {
	logger.Log(ctx).Debug(ctx, LogMemberGet, zap.String("user_id", userID))

	req := api.NewRequest(http.MethodGet, "/member/"+userID)

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var member dto.Member
	if err := resp.Envelope.DecodeResData(&member); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return &member, nil
}

// UpdateMember обновляет профиль участника.
func (m *MemberAPI) UpdateMember(ctx context.Context, member *dto.Member) error {
	logger.Log(ctx).Info(ctx, LogMemberUpdate, zap.String("user_id", member.UserID))

	req := api.NewRequest(http.MethodPut, "/member/update")
	req.Body = member

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	return nil
}

// CheckPassword проверяет текущий пароль участника.
func (m *MemberAPI) CheckPassword(ctx context.Context, userID, userPw string) (bool, error) {
	req := api.NewRequest(http.MethodPost, "/member/checkPw")
	req.Body = &dto.PasswordCheckRequest{UserID: userID, UserPw: userPw}

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var ok bool
	if err := resp.Envelope.DecodeResData(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return ok, nil
}

// UpdatePassword меняет пароль участника.
func (m *MemberAPI) UpdatePassword(ctx context.Context, in *dto.PasswordUpdateRequest) error {
	logger.Log(ctx).Info(ctx, LogMemberPwUpdate, zap.String("user_id", in.UserID))

	req := api.NewRequest(http.MethodPut, "/member/updatePw")
	req.Body = in

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	return nil
}

// FindUserID запрашивает восстановление идентификатора по почте.
func (m *MemberAPI) FindUserID(ctx context.Context, userEmail string) error {
	logger.Log(ctx).Info(ctx, LogMemberFindUserID)

	req := api.NewRequest(http.MethodGet, "/member/findUserId/"+userEmail)

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	return nil
}

// FindUserPw запрашивает сброс пароля по идентификатору и почте.
func (m *MemberAPI) FindUserPw(ctx context.Context, userID, userEmail string) error {
	logger.Log(ctx).Info(ctx, LogMemberFindUserPw, zap.String("user_id", userID))

	req := api.NewRequest(http.MethodGet, "/member/findUserPw/"+userID+"/"+userEmail)

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	return nil
}

// MyPosts возвращает записи участника.
func (m *MemberAPI) MyPosts(ctx context.Context, userID string) ([]dto.Post, error) {
	req := api.NewRequest(http.MethodGet, "/member/myPosts/"+userID)

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var posts []dto.Post
	if err := resp.Envelope.DecodeResData(&posts); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return posts, nil
}

// MyMarkets возвращает объявления участника.
func (m *MemberAPI) MyMarkets(ctx context.Context, userID string) ([]dto.Market, error) {
	req := api.NewRequest(http.MethodGet, "/member/myMarkets/"+userID)

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberCall, err)
	}

	var markets []dto.Market
	if err := resp.Envelope.DecodeResData(&markets); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMemberDecode, err)
	}

	return markets, nil
}
