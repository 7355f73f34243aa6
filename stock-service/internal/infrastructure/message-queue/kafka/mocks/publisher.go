package mocks

import (
	"context"
	"testing"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t *testing.T) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return m.Called(ctx, key, msg).Error(0)
}

func (m *EventPublisher) Close() error {
	return m.Called().Error(0)
}
