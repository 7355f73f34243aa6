package stockservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/pkg/httpclient"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrUnexpectedStatus is returned when the stock service answers outside 2xx.
	ErrUnexpectedStatus = errors.New("unexpected status from stock service")
	// ErrClientStatus wraps ErrUnexpectedStatus for 4xx answers. The request
	// itself was refused, so retrying it unchanged cannot succeed.
	ErrClientStatus = fmt.Errorf("%w: request rejected", ErrUnexpectedStatus)
)

func statusError(statusCode int) error {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", ErrClientStatus, statusCode)
	}

	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
}

type Client interface {
	// CreateStock issues exactly one POST /stock carrying token as the bearer credential.
	CreateStock(ctx context.Context, req dto.StockRequest, token string) ([]byte, error)
	// StockExists reports whether a stock record is stored under key.
	StockExists(ctx context.Context, key string) (bool, error)
}

type ClientImpl struct {
	baseURL    string
	httpClient *httpclient.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
}

func CreateNewClient(baseURL string, httpClient *httpclient.Client, cb *gobreaker.CircuitBreaker[[]byte]) Client {
	return &ClientImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cb:         cb,
	}
}

func (c *ClientImpl) CreateStock(ctx context.Context, req dto.StockRequest, token string) ([]byte, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	return c.cb.Execute(func() ([]byte, error) {
		statusCode, body, err := c.httpClient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.baseURL + "/stock",
			Method: http.MethodPost,
			Body:   reqBody,
			Headers: map[string]string{
				echo.HeaderContentType:   echo.MIMEApplicationJSON,
				echo.HeaderAuthorization: "Bearer " + token,
			},
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "CreateStock").Msg("")
			return nil, err
		}

		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			log.Ctx(ctx).Error().Int("status", statusCode).Str("body", string(body)).Str("component", "CreateStock").Msg("")
			return nil, statusError(statusCode)
		}

		return body, nil
	})
}

func (c *ClientImpl) StockExists(ctx context.Context, key string) (bool, error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, body, err := c.httpClient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.baseURL + "/stock/" + url.PathEscape(key),
			Method: http.MethodGet,
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "StockExists").Msg("")
			return nil, err
		}

		switch {
		case statusCode == http.StatusNotFound:
			return nil, nil
		case statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices:
			return nil, statusError(statusCode)
		}

		return body, nil
	})
	if err != nil {
		return false, err
	}

	return body != nil, nil
}
