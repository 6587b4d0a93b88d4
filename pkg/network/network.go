package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	authproviders "github.com/cbodonnell/swipemath/pkg/auth/providers"
	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/game"
	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/messages"
	"github.com/cbodonnell/swipemath/pkg/queue"
	"github.com/cbodonnell/swipemath/pkg/workers"
	"nhooyr.io/websocket"
)

const (
	// LoginTimeout is how long a new connection has to send its login message
	LoginTimeout = 10 * time.Second
	// SessionEventQueueSize bounds the events waiting for a session loop
	SessionEventQueueSize = 1024
)

type NetworkManager struct {
	authProvider   authproviders.AuthProvider
	clientManager  *ClientManager
	gameConfig     config.GameConfig
	saveResultChan chan<- workers.SaveResultRequest
	loopInterval   time.Duration
	wsServer       *WSServer
}

type NewNetworkManagerOptions struct {
	AuthProvider   authproviders.AuthProvider
	ClientManager  *ClientManager
	GameConfig     config.GameConfig
	SaveResultChan chan<- workers.SaveResultRequest
	// GameLoopInterval is how often each session drains its events
	GameLoopInterval time.Duration
	WSPort           int
	WSServerTLS      *TLSConfig
}

func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	n := &NetworkManager{
		authProvider:   opts.AuthProvider,
		clientManager:  opts.ClientManager,
		gameConfig:     opts.GameConfig,
		saveResultChan: opts.SaveResultChan,
		loopInterval:   opts.GameLoopInterval,
	}
	n.wsServer = NewWSServer(NewWSServerOptions{
		Port:    opts.WSPort,
		TLS:     opts.WSServerTLS,
		Handler: n.handleConnection,
	})
	return n
}

// Start serves clients until ctx is done.
func (n *NetworkManager) Start(ctx context.Context) error {
	return n.wsServer.Start(ctx)
}

// Handler returns the WebSocket endpoint as an http.Handler.
func (n *NetworkManager) Handler() http.Handler {
	return n.wsServer
}

// handleConnection logs the client in and then runs its session until the
// connection closes.
func (n *NetworkManager) handleConnection(ctx context.Context, conn *websocket.Conn, remoteAddr string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := n.login(ctx, conn, remoteAddr)
	if err != nil {
		log.Warn("Login from %s failed: %v", remoteAddr, err)
		if err := n.sendServerLoginFailure(ctx, conn, err.Error()); err != nil {
			log.Error("Failed to send server login failure: %v", err)
		}
		conn.Close(websocket.StatusPolicyViolation, "login failed")
		return
	}
	defer n.clientManager.DisconnectClient(client.ID)
	log.Info("Client %d connected as user %s with session %s", client.ID, client.UserID, client.SessionID)

	if err := n.sendServerLoginSuccess(ctx, client); err != nil {
		log.Error("Failed to send server login success: %v", err)
		return
	}

	session := n.newGameSession(client)
	go session.worker.Start(ctx)
	go func() {
		if err := session.Manager.Start(ctx); err != nil {
			log.Error("Session %s stopped: %v", client.SessionID, err)
		}
	}()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			if errors.Is(err, ErrMalformedMessage) {
				log.Warn("Dropping message from client %d: %v", client.ID, err)
				continue
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				if ctx.Err() == nil {
					log.Error("Error reading WebSocket message from client %d: %v", client.ID, err)
				}
			}
			log.Info("Client %d disconnected", client.ID)
			return
		}

		if err := n.handleClientMessage(ctx, session, message); err != nil {
			log.Warn("Failed to handle %s message from client %d: %v", message.Type, client.ID, err)
		}
	}
}

// login waits for the client's login message and registers the client.
func (n *NetworkManager) login(ctx context.Context, conn *websocket.Conn, remoteAddr string) (*Client, error) {
	loginCtx, cancel := context.WithTimeout(ctx, LoginTimeout)
	defer cancel()

	message, err := ReadMessageFromWS(loginCtx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read login message: %v", err)
	}
	if message.Type != messages.MessageTypeClientLogin {
		return nil, fmt.Errorf("expected %s message, got %s", messages.MessageTypeClientLogin, message.Type)
	}

	clientLogin := &messages.ClientLogin{}
	if err := json.Unmarshal(message.Payload, clientLogin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client login: %v", err)
	}

	token, err := n.authProvider.VerifyToken(loginCtx, clientLogin.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %v", err)
	}

	client, err := n.clientManager.ConnectClient(conn, remoteAddr, token.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to connect client: %v", err)
	}

	return client, nil
}

func (n *NetworkManager) newGameSession(client *Client) *Session {
	session := newSession(client)
	session.Manager = game.NewGameManager(game.NewGameManagerOptions{
		SessionID:      client.SessionID,
		UserID:         client.UserID,
		Engine:         game.NewEngine(n.gameConfig, nil),
		EventQueue:     queue.NewInMemoryQueue(SessionEventQueueSize),
		Presenter:      session,
		AudioPlayer:    session,
		SaveResultChan: n.saveResultChan,
		LoopInterval:   n.loopInterval,
		Logger:         log.Default().With("client", client.ID),
	})
	return session
}

func (n *NetworkManager) handleClientMessage(ctx context.Context, session *Session, message *messages.Message) error {
	if message.Type == messages.MessageTypeClientPing {
		return session.send(ctx, workers.ServerMessage{Type: messages.MessageTypeServerPong})
	}

	event, err := EventFromMessage(message)
	if err != nil {
		return err
	}
	return session.Manager.Enqueue(event)
}

// EventFromMessage translates a client command into a session event.
func EventFromMessage(message *messages.Message) (types.Event, error) {
	switch message.Type {
	case messages.MessageTypeClientStart:
		return types.StartEvent{}, nil
	case messages.MessageTypeClientRestart:
		return types.RestartEvent{}, nil
	case messages.MessageTypeClientTrackingSample:
		sample := &messages.ClientTrackingSample{}
		if err := json.Unmarshal(message.Payload, sample); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tracking sample: %v", err)
		}
		return types.TrackingSampleEvent{Visible: sample.Visible, X: sample.X}, nil
	case messages.MessageTypeClientChoice:
		choice := &messages.ClientChoice{}
		if err := json.Unmarshal(message.Payload, choice); err != nil {
			return nil, fmt.Errorf("failed to unmarshal choice: %v", err)
		}
		side, err := types.ParseSide(choice.Side)
		if err != nil {
			return nil, fmt.Errorf("failed to parse choice: %v", err)
		}
		return types.ChoiceSubmittedEvent{Side: side}, nil
	case messages.MessageTypeClientCollaboratorFailure:
		failure := &messages.ClientCollaboratorFailure{}
		if err := json.Unmarshal(message.Payload, failure); err != nil {
			return nil, fmt.Errorf("failed to unmarshal collaborator failure: %v", err)
		}
		return types.CollaboratorFailedEvent{Collaborator: failure.Collaborator, Reason: failure.Reason}, nil
	default:
		return nil, fmt.Errorf("unexpected message type %s", message.Type)
	}
}

func (n *NetworkManager) sendServerLoginSuccess(ctx context.Context, client *Client) error {
	serverLoginSuccess := &messages.ServerLoginSuccess{
		ClientID:  client.ID,
		SessionID: client.SessionID,
		UserID:    client.UserID,
		Config:    n.gameConfig,
	}

	payload, err := json.Marshal(serverLoginSuccess)
	if err != nil {
		return fmt.Errorf("failed to marshal server login success: %v", err)
	}

	msg := &messages.Message{
		ClientID: client.ID,
		Type:     messages.MessageTypeServerLoginSuccess,
		Payload:  payload,
	}

	return client.WriteMessage(ctx, msg)
}

func (n *NetworkManager) sendServerLoginFailure(ctx context.Context, conn *websocket.Conn, reason string) error {
	serverLoginFailure := &messages.ServerLoginFailure{
		Reason: reason,
	}

	payload, err := json.Marshal(serverLoginFailure)
	if err != nil {
		return fmt.Errorf("failed to marshal server login failure: %v", err)
	}

	msg := &messages.Message{
		ClientID: 0,
		Type:     messages.MessageTypeServerLoginFailure,
		Payload:  payload,
	}

	return WriteMessageToWS(ctx, conn, msg)
}
