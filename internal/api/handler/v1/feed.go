package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

const (
	feedEventOrderCreated = "order.created"

	feedWriteWait   = 10 * time.Second
	feedPongWait    = 60 * time.Second
	feedPingPeriod  = (feedPongWait * 9) / 10
	feedSendBuffer  = 256
	feedBroadcastsQ = 64
)

type FeedEvent struct {
	Type  string       `json:"type"`
	Order domain.Order `json:"order"`
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// FeedHub pushes every committed order to the connected websocket clients.
// Run must be running for clients to be registered.
type FeedHub struct {
	upgrader     websocket.Upgrader
	clients      map[*feedClient]struct{}
	clientsMutex sync.RWMutex
	broadcast    chan []byte
	register     chan *feedClient
	unregister   chan *feedClient
}

func NewFeedHub(allowedOrigins []string) *FeedHub {
	h := &FeedHub{
		clients:    make(map[*feedClient]struct{}),
		broadcast:  make(chan []byte, feedBroadcastsQ),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}

	return h
}

func (h *FeedHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.clientsMutex.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.clientsMutex.Unlock()
			return
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client] = struct{}{}
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case message := <-h.broadcast:
			h.clientsMutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Too slow to keep up; drop it.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// Publish queues order for broadcast. It never blocks: when the queue is full
// the event is dropped and logged.
func (h *FeedHub) Publish(order domain.Order) {
	message, err := json.Marshal(FeedEvent{Type: feedEventOrderCreated, Order: order})
	if err != nil {
		zap.L().Error("failed to encode feed event", zap.Error(err), zap.Uint("order_id", order.ID))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("order feed queue full, event dropped", zap.Uint("order_id", order.ID))
	}
}

func (h *FeedHub) ClientCount() int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	return len(h.clients)
}

// HandleWebSocket godoc
// @Summary      Live order feed
// @Description  Upgrades to a websocket. Each committed order is pushed as {"type":"order.created","order":{...}}.
// @Tags         orders
// @Success      101  {string}  string  "Switching Protocols"
// @Router       /api/v1/orders/feed [get]
func (h *FeedHub) HandleWebSocket(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, feedSendBuffer),
	}

	select {
	case h.register <- client:
	case <-ctx.Request.Context().Done():
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(feedPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; the feed is one-way.
func (c *feedClient) readPump(h *FeedHub) {
	defer func() {
		h.unregisterClient(c)
		c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("feed client closed", zap.Error(err))
			}
			return
		}
	}
}

func (h *FeedHub) unregisterClient(c *feedClient) {
	// Run may already have stopped and closed every client.
	select {
	case h.unregister <- c:
	case <-time.After(feedWriteWait):
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}

		return false
	}
}
