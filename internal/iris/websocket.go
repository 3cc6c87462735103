package iris

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kapu/botkit-go/internal/constants"
	"go.uber.org/zap"
)

// Handler receives every decoded frame, on the listener goroutine.
type Handler func(message *Message)

// WebSocket reads the Iris event stream and reconnects on read errors.
type WebSocket struct {
	wsURL   string
	handler Handler
	logger  *zap.Logger

	connMu sync.Mutex
	conn   *websocket.Conn

	state   WebSocketState
	stateMu sync.RWMutex

	maxReconnectAttempts int
	reconnectDelay       time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewWebSocket(wsURL string, handler Handler, logger *zap.Logger) *WebSocket {
	return &WebSocket{
		wsURL:                wsURL,
		handler:              handler,
		logger:               logger,
		state:                WSStateDisconnected,
		maxReconnectAttempts: constants.WebSocketConfig.MaxReconnectAttempts,
		reconnectDelay:       constants.WebSocketConfig.ReconnectDelay,
		stopCh:               make(chan struct{}),
	}
}

// Connect dials once and starts the listener. Later drops are retried by the
// listener itself.
func (ws *WebSocket) Connect(ctx context.Context) error {
	if err := ws.dial(ctx); err != nil {
		ws.setState(WSStateFailed)
		return err
	}

	ws.wg.Add(1)
	go ws.run(ctx)
	return nil
}

func (ws *WebSocket) dial(ctx context.Context) error {
	ws.setState(WSStateConnecting)

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = constants.WebSocketConfig.HandshakeTimeout

	conn, _, err := dialer.DialContext(ctx, ws.wsURL, nil)
	if err != nil {
		ws.logger.Error("Failed to connect WebSocket", zap.String("url", ws.wsURL), zap.Error(err))
		return err
	}

	ws.connMu.Lock()
	ws.conn = conn
	ws.connMu.Unlock()

	ws.setState(WSStateConnected)
	ws.logger.Info("WebSocket connected", zap.String("url", ws.wsURL))
	return nil
}

func (ws *WebSocket) run(ctx context.Context) {
	defer ws.wg.Done()
	defer ws.logger.Info("WebSocket listener stopped")

	for {
		ws.listen()

		if ws.stopped(ctx) {
			return
		}
		if !ws.reconnect(ctx) {
			ws.setState(WSStateFailed)
			return
		}
	}
}

// listen reads until the connection breaks.
func (ws *WebSocket) listen() {
	ws.connMu.Lock()
	conn := ws.conn
	ws.connMu.Unlock()
	if conn == nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-ws.stopCh:
			default:
				ws.logger.Warn("WebSocket read error", zap.Error(err))
			}
			ws.setState(WSStateDisconnected)
			return
		}
		ws.handleFrame(data)
	}
}

func (ws *WebSocket) reconnect(ctx context.Context) bool {
	for attempt := 1; attempt <= ws.maxReconnectAttempts; attempt++ {
		ws.setState(WSStateReconnecting)
		ws.logger.Info("Scheduling reconnect",
			zap.Int("attempt", attempt),
			zap.Int("max", ws.maxReconnectAttempts),
			zap.Duration("delay", ws.reconnectDelay),
		)

		select {
		case <-ctx.Done():
			return false
		case <-ws.stopCh:
			return false
		case <-time.After(ws.reconnectDelay):
		}

		if err := ws.dial(ctx); err == nil {
			return true
		}
	}

	ws.logger.Error("Max reconnect attempts reached", zap.Int("attempts", ws.maxReconnectAttempts))
	return false
}

func (ws *WebSocket) handleFrame(data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		ws.logger.Warn("Failed to parse message",
			zap.Error(err),
			zap.String("data", preview),
		)
		return
	}

	if ws.handler != nil {
		ws.handler(&message)
	}
}

func (ws *WebSocket) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-ws.stopCh:
		return true
	default:
		return false
	}
}

func (ws *WebSocket) setState(newState WebSocketState) {
	ws.stateMu.Lock()
	oldState := ws.state
	ws.state = newState
	ws.stateMu.Unlock()

	if oldState != newState {
		ws.logger.Debug("WebSocket state changed",
			zap.String("from", oldState.String()),
			zap.String("to", newState.String()),
		)
	}
}

func (ws *WebSocket) State() WebSocketState {
	ws.stateMu.RLock()
	defer ws.stateMu.RUnlock()
	return ws.state
}

func (ws *WebSocket) IsConnected() bool {
	return ws.State() == WSStateConnected
}

// Disconnect closes the connection and waits briefly for the listener to exit.
func (ws *WebSocket) Disconnect() error {
	ws.stopOnce.Do(func() {
		close(ws.stopCh)
	})

	ws.connMu.Lock()
	conn := ws.conn
	ws.conn = nil
	ws.connMu.Unlock()

	var closeErr error
	if conn != nil {
		if err := conn.Close(); err != nil {
			ws.logger.Error("Failed to close WebSocket", zap.Error(err))
			closeErr = err
		}
	}
	ws.setState(WSStateDisconnected)

	done := make(chan struct{})
	go func() {
		ws.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		ws.logger.Warn("Timeout waiting for listener to stop")
	}

	ws.logger.Info("WebSocket disconnected")
	return closeErr
}
