package event

import (
	"context"
	"errors"
	"testing"

	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.fail {
		return errors.New("handler failure")
	}
	h.received = append(h.received, event)
	return nil
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func newCategoryEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	category, err := catalog.NewCategory("Facials", "facials")
	require.NoError(t, err)
	return catalog.NewCategoryCreatedEvent(category)
}

func TestInMemoryEventBusPublish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{catalog.EventTypeCategoryCreated}}
	bus.Subscribe(handler)

	event := newCategoryEvent(t)
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Len(t, handler.received, 1)
	assert.Equal(t, event.EventID(), handler.received[0].EventID())
}

func TestInMemoryEventBusTypeFiltering(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"catalog.treatment.created"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newCategoryEvent(t)))

	assert.Empty(t, handler.received)
}

func TestInMemoryEventBusWildcard(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newCategoryEvent(t)))

	assert.Len(t, handler.received, 1)
}

func TestInMemoryEventBusHandlerErrorDoesNotFailPublish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{catalog.EventTypeCategoryCreated}, fail: true}
	healthy := &recordingHandler{types: []string{catalog.EventTypeCategoryCreated}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newCategoryEvent(t)))

	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBusUnsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{catalog.EventTypeCategoryCreated}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newCategoryEvent(t)))

	assert.Empty(t, handler.received)
}
