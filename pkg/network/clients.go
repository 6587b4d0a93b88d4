package network

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/cbodonnell/swipemath/pkg/messages"
	"github.com/cbodonnell/swipemath/pkg/workers"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
)

var _ workers.MessageWriter = &Client{}

// Client represents a logged in connection. Each client plays exactly one
// session.
type Client struct {
	ID         uint32
	UserID     string
	SessionID  string
	RemoteAddr string
	WSConn     *websocket.Conn
}

// WriteMessage sends msg over the client's connection.
func (c *Client) WriteMessage(ctx context.Context, msg *messages.Message) error {
	if c.WSConn == nil {
		return fmt.Errorf("client %d has no connection", c.ID)
	}
	return WriteMessageToWS(ctx, c.WSConn, msg)
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
	}
}

// ConnectClient registers a client for conn and assigns it a new session.
func (cm *ClientManager) ConnectClient(conn *websocket.Conn, remoteAddr string, userID string) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	client := &Client{
		ID:         clientID,
		UserID:     userID,
		SessionID:  uuid.NewString(),
		RemoteAddr: remoteAddr,
		WSConn:     conn,
	}
	cm.clients[clientID] = client

	return client, nil
}

// GetClient returns the client with the given ID.
func (cm *ClientManager) GetClient(clientID uint32) (*Client, error) {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	client, ok := cm.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("client %d not found", clientID)
	}
	return client, nil
}

// GetClients returns a slice of all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// Count returns the number of connected clients.
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	delete(cm.clients, clientID)
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
