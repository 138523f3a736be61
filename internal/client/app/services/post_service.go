package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/api"
	"startuphub/pkg/logger"
)

// Сообщения журнала сервиса записей.
const (
	LogPostList   = "fetching post list"
	LogPostCreate = "creating post"
	LogPostUpdate = "updating post"
	LogPostDelete = "deleting post"
)

// Сообщения об ошибках сервиса записей.
const (
	ErrorPostCall   = "post api call failed"
	ErrorPostDecode = "failed to decode post payload"
)

// PostAPI реализует api.PostService.
type PostAPI struct {
	client api.Client
}

// NewPostAPI создает сервис записей.
func NewPostAPI(client api.Client) *PostAPI {
	return &PostAPI{client: client}
}

// List возвращает страницу записей указанного типа. Эндпоинт отвечает
// без конверта, поэтому декодируется сырое тело ответа.
func (p *PostAPI) List(ctx context.Context, postType string, reqPage int) (*dto.PostListResult, error) {
	logger.Log(ctx).Debug(ctx, LogPostList,
		zap.String("post_type", postType),
		zap.Int("req_page", reqPage))

	req := api.NewRequest(http.MethodGet, "/api/post/list/"+postType+"/"+strconv.Itoa(reqPage))

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorPostCall, err)
	}

	var result dto.PostListResult
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorPostDecode, err)
	}

	return &result, nil
}

// View возвращает запись по номеру.
func (p *PostAPI) View(ctx context.Context, postNo int) (*dto.Post, error) {
	req := api.NewRequest(http.MethodGet, "/api/post/view/"+strconv.Itoa(postNo))

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorPostCall, err)
	}

	var post dto.Post
	if err := resp.Envelope.DecodeResData(&post); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorPostDecode, err)
	}

	return &post, nil
}

// Create создает запись.
func (p *PostAPI) Create(ctx context.Context, post *dto.Post) error {
	logger.Log(ctx).Info(ctx, LogPostCreate, zap.String("post_type", post.PostType))

	req := api.NewRequest(http.MethodPost, "/api/post/write")
	req.Body = post

	if _, err := p.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorPostCall, err)
	}

	return nil
}

// Update обновляет запись.
func (p *PostAPI) Update(ctx context.Context, postNo int, post *dto.Post) error {
	logger.Log(ctx).Info(ctx, LogPostUpdate, zap.Int("post_no", postNo))

	req := api.NewRequest(http.MethodPut, "/api/post/update/"+strconv.Itoa(postNo))
	req.Body = post

	if _, err := p.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorPostCall, err)
	}

	return nil
}

// Delete удаляет запись.
func (p *PostAPI) Delete(ctx context.Context, postNo int) error {
	logger.Log(ctx).Info(ctx, LogPostDelete, zap.Int("post_no", postNo))

	req := api.NewRequest(http.MethodDelete, "/api/post/delete/"+strconv.Itoa(postNo))

	if _, err := p.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorPostCall, err)
	}

	return nil
}
