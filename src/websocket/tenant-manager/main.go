package websocket_tenant_manager

import (
	"sync"

	synch_service "github.com/chatseal/chatseal-server/src/synch/service"
	websocket_model "github.com/chatseal/chatseal-server/src/websocket/model"
	"github.com/google/uuid"
)

// TenantChannelManager manages separate WebSocket channels per tenant using
// the mutex-swapper pattern. This keeps broadcasting scoped: a tenant's
// viewers only ever see that tenant's messages.
type TenantChannelManager[T any] struct {
	channels       map[uuid.UUID]*websocket_model.Channel[T]
	channelSwapper *synch_service.MutexSwapper[uuid.UUID]
	globalMutex    sync.RWMutex
}

// GetOrCreateChannel retrieves or creates the channel for a tenant.
func (m *TenantChannelManager[T]) GetOrCreateChannel(tenantID uuid.UUID) *websocket_model.Channel[T] {
	m.channelSwapper.Lock(tenantID)
	defer m.channelSwapper.Unlock(tenantID)

	m.globalMutex.Lock()
	defer m.globalMutex.Unlock()

	channel, exists := m.channels[tenantID]
	if !exists {
		channel = websocket_model.CreateChannel[T]()
		m.channels[tenantID] = channel
	}

	return channel
}

// GetChannel retrieves the channel for a tenant if it exists.
func (m *TenantChannelManager[T]) GetChannel(tenantID uuid.UUID) *websocket_model.Channel[T] {
	m.globalMutex.RLock()
	defer m.globalMutex.RUnlock()

	return m.channels[tenantID]
}

// BroadcastToTenant publishes data to all clients subscribed to a tenant's
// scope. Publishing with no channel or no subscribers is a silent no-op.
func (m *TenantChannelManager[T]) BroadcastToTenant(tenantID uuid.UUID, data T) {
	channel := m.GetChannel(tenantID)
	if channel != nil {
		channel.BroadcastJsonMultithread(data)
	}
}

// AppendClient adds a client to the tenant channel.
func (m *TenantChannelManager[T]) AppendClient(tenantID uuid.UUID, client *websocket_model.Client, key string) {
	channel := m.GetOrCreateChannel(tenantID)
	channel.AppendClient(client, key)
}

// RemoveClient removes a client from the tenant channel.
func (m *TenantChannelManager[T]) RemoveClient(tenantID uuid.UUID, key string) {
	channel := m.GetChannel(tenantID)
	if channel != nil {
		channel.RemoveClient(key)
	}
}

// CreateTenantChannelManager creates a new tenant channel manager.
func CreateTenantChannelManager[T any]() *TenantChannelManager[T] {
	return &TenantChannelManager[T]{
		channels:       make(map[uuid.UUID]*websocket_model.Channel[T]),
		channelSwapper: synch_service.CreateMutexSwapper[uuid.UUID](),
	}
}
