// Package realtime 通过 WebSocket 向所有已连接客户端推送帖子变更事件。
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/storefront-next/internal/logger"
)

// Event 推送给客户端的帖子变更事件
type Event struct {
	Action string      `json:"action"`
	Post   interface{} `json:"post"`
}

const writeWait = 10 * time.Second

// client 单个订阅连接。websocket.Conn 同一时刻只允许一个写入者，
// 写锁把并发 Broadcast 对同一连接的帧串行化。
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) write(event Event) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(event)
}

func (cl *client) close() {
	cl.mu.Lock()
	cl.conn.Close()
	cl.mu.Unlock()
}

// Hub 管理 WebSocket 连接集合并向其广播事件。
// 慢客户端或写失败的客户端直接摘除。
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
}

// NewHub 创建广播中心
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS 升级 HTTP 连接并注册到广播集合
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnw("ws_upgrade_failed", "error", err)
		return
	}
	cl := &client{conn: conn}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	logger.Infow("ws_client_connected", "clients", count)

	// 读循环只用于感知断开，收到的消息被丢弃
	go func() {
		defer h.remove(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast 向所有客户端推送事件，逐个写，失败即摘除
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.write(event); err != nil {
			logger.Warnw("ws_broadcast_failed", "error", err)
			h.remove(cl)
		}
	}
}

// Close 断开所有客户端
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, cl := range clients {
		cl.close()
	}
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	_, ok := h.clients[cl]
	delete(h.clients, cl)
	h.mu.Unlock()
	if ok {
		cl.close()
	}
}
