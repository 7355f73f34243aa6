package mocks

import (
	"context"
	"testing"

	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func NewClient(t *testing.T) *Client {
	m := &Client{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Client) CreateStock(ctx context.Context, req dto.StockRequest, token string) ([]byte, error) {
	args := m.Called(ctx, req, token)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func (m *Client) StockExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
