package api

import (
	"context"

	"startuphub/internal/client/app/dto"
)

// MemberService определяет операции над участниками платформы.
type MemberService interface {
	SignUp(ctx context.Context, member *dto.Member) error
	CheckUserID(ctx context.Context, userID string) (int, error)
	CheckUserEmail(ctx context.Context, userEmail string) (int, error)
	GetMember(ctx context.Context, userID string) (*dto.Member, error)
	UpdateMember(ctx context.Context, member *dto.Member) error
	CheckPassword(ctx context.Context, userID, userPw string) (bool, error)
	UpdatePassword(ctx context.Context, req *dto.PasswordUpdateRequest) error
	FindUserID(ctx context.Context, userEmail string) error
	FindUserPw(ctx context.Context, userID, userEmail string) error
	MyPosts(ctx context.Context, userID string) ([]dto.Post, error)
	MyMarkets(ctx context.Context, userID string) ([]dto.Market, error)
}

// PostService определяет операции над записями досок сообщества.
type PostService interface {
	List(ctx context.Context, postType string, reqPage int) (*dto.PostListResult, error)
	View(ctx context.Context, postNo int) (*dto.Post, error)
	Create(ctx context.Context, post *dto.Post) error
	Update(ctx context.Context, postNo int, post *dto.Post) error
	Delete(ctx context.Context, postNo int) error
}

// MarketService определяет операции над объявлениями маркетплейса.
type MarketService interface {
	List(ctx context.Context) ([]dto.Market, error)
	Detail(ctx context.Context, marketNo int) (*dto.Market, error)
	Create(ctx context.Context, market *dto.Market) error
	Update(ctx context.Context, marketNo int, market *dto.Market) error
	Delete(ctx context.Context, marketNo int) error
	Comments(ctx context.Context, marketNo int) ([]dto.MarketComment, error)
}

// SubsidyService определяет операции каталога государственных услуг.
// Каталог обслуживается внешним порталом и не проходит через конвейер.
type SubsidyService interface {
	ServiceList(ctx context.Context, page, perPage int) (*dto.SubsidyListResult, error)
	ServiceDetail(ctx context.Context, serviceID string) (*dto.SubsidyService, error)
}
