package assistant

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"traiteur/internal/assistant/providers"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains one chat WebSocket connection with a client.
type WSConnection struct {
	conn    *websocket.Conn
	send    chan []byte
	mu      sync.Mutex
	service *Service
}

// chatRequest is the inbound frame: the conversation so far.
type chatRequest struct {
	Messages []providers.Message `json:"messages"`
}

// chatFrame is the outbound frame. Exactly one field is set per frame:
// a content chunk, a done marker, or an error message.
type chatFrame struct {
	Chunk string `json:"chunk,omitempty"`
	Done  bool   `json:"done,omitempty"`
	Error string `json:"error,omitempty"`
}

// HandleWebSocket upgrades the request and starts the pumps.
func (s *Service) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &WSConnection{
		conn:    conn,
		send:    make(chan []byte, 256),
		service: s,
	}

	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump pumps messages from the WebSocket connection to the handler
func (c *WSConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512 * 1024) // 512KB
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the service to the WebSocket connection
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one inbound conversation frame.
func (c *WSConnection) handleMessage(message []byte) {
	var req chatRequest
	if err := json.Unmarshal(message, &req); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		c.sendFrame(chatFrame{Error: "malformed request"})
		return
	}

	if len(req.Messages) == 0 {
		c.sendFrame(chatFrame{Error: "messages must not be empty"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		err := c.service.Chat(ctx, req.Messages, func(chunk string) error {
			c.sendFrame(chatFrame{Chunk: chunk})
			return nil
		})
		if err != nil {
			c.sendFrame(chatFrame{Error: ErrorText(err)})
			return
		}
		c.sendFrame(chatFrame{Done: true})
	}()
}

// sendFrame queues one outbound frame for the write pump.
func (c *WSConnection) sendFrame(frame chatFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("Error marshaling frame: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}
