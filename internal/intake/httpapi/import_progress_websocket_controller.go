package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"catalog-server/internal/infra/async"
	"catalog-server/internal/infra/httpserver"
	"catalog-server/internal/intake/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should validate the origin
		return true
	},
}

type ProgressMessage struct {
	Type      string                  `json:"type"`
	Event     string                  `json:"event"`
	Timestamp time.Time               `json:"timestamp"`
	Data      usecases.ImportProgress `json:"data"`
}

// ImportProgressWebSocketController streams per-row commit progress to every
// connected client.
type ImportProgressWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan ProgressMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewImportProgressWebSocketController(broker async.InternalBroker) *ImportProgressWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &ImportProgressWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ProgressMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	// Start the hub
	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*ImportProgressWebSocketController)(nil)

func (wsc *ImportProgressWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/import-progress", wsc.handleWebSocket())
}

func (wsc *ImportProgressWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *ImportProgressWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *ImportProgressWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *ImportProgressWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.BrokerTopicImportProgress)
	if err != nil {
		slog.Error("failed to subscribe to import progress", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.BrokerTopicImportProgress, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				close := func() {
					defer func() {
						if r := recover(); r != nil {
							slog.Warn("recovered from panic while closing websocket", slog.Any("panic", r))
						}
					}()
					client.Close()
				}
				close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case message := <-wsc.broadcast:
			wsc.clientsMux.RLock()
			for client := range wsc.clients {
				select {
				case <-wsc.ctx.Done():
					wsc.clientsMux.RUnlock()
					return
				default:
					client.SetWriteDeadline(time.Now().Add(10 * time.Second))
					if err := client.WriteJSON(message); err != nil {
						slog.Error("failed to write message to websocket client", slog.String("error", err.Error()))
						client.Close()
						delete(wsc.clients, client)
					}
				}
			}
			wsc.clientsMux.RUnlock()

		case brokerMsg := <-subscription.Receiver:
			progress, ok := brokerMsg.Value.(usecases.ImportProgress)
			if !ok {
				continue
			}

			message := ProgressMessage{
				Type:      "import_progress",
				Event:     brokerMsg.Event,
				Timestamp: time.Now(),
				Data:      progress,
			}

			// Non-blocking send to broadcast channel
			select {
			case wsc.broadcast <- message:
			default:
				slog.Warn("broadcast channel full, dropping message")
			}
		}
	}
}

func (wsc *ImportProgressWebSocketController) Shutdown() {
	slog.Info("shutting down import progress websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()

	close(wsc.broadcast)
	close(wsc.register)
	close(wsc.unregister)
}
