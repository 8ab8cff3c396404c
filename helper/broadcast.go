package helper

import (
	"context"
	"encoding/json"
	"lottery_manager/constants"
	"lottery_manager/model"
	"lottery_manager/utils"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// Subscriber là một kết nối websocket đang theo dõi kết quả quay số
type Subscriber interface {
	WriteMessage(messageType int, data []byte) error
}

const (
	subscriberBuffer = 8
	writeWait        = 10 * time.Second
)

// DrawHub giữ mỗi subscriber một hàng đợi riêng và một goroutine ghi,
// nên Broadcast không bao giờ chờ socket.
type DrawHub struct {
	mu   sync.Mutex
	subs map[Subscriber]chan []byte
}

func NewDrawHub() *DrawHub {
	return &DrawHub{subs: make(map[Subscriber]chan []byte)}
}

func (h *DrawHub) Register(s Subscriber) {
	send := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		h.mu.Unlock()
		return
	}
	h.subs[s] = send
	h.mu.Unlock()

	go h.writeLoop(s, send)
}

func (h *DrawHub) Unregister(s Subscriber) {
	h.mu.Lock()
	h.remove(s)
	h.mu.Unlock()
}

func (h *DrawHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Broadcast đưa payload vào hàng đợi của từng subscriber. Subscriber có hàng đợi
// đầy (không đọc kịp) bị loại và đóng kết nối. Returns the number queued.
func (h *DrawHub) Broadcast(payload []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	queued := 0
	for s, send := range h.subs {
		select {
		case send <- payload:
			queued++
		default:
			h.remove(s)
			go closeSubscriber(s)
		}
	}
	return queued
}

// remove must be called with mu held.
func (h *DrawHub) remove(s Subscriber) {
	send, ok := h.subs[s]
	if !ok {
		return
	}
	delete(h.subs, s)
	close(send)
}

func (h *DrawHub) writeLoop(s Subscriber, send <-chan []byte) {
	for payload := range send {
		if d, ok := s.(interface{ SetWriteDeadline(time.Time) error }); ok {
			_ = d.SetWriteDeadline(time.Now().Add(writeWait))
		}
		if err := s.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.Unregister(s)
			closeSubscriber(s)
			return
		}
	}
}

func closeSubscriber(s Subscriber) {
	if c, ok := s.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

// DrawBroadcaster publishes the current draw. With a redis client every instance
// receives it through DRAW_CHANNEL; otherwise it goes straight to the local hub.
type DrawBroadcaster struct {
	hub   *DrawHub
	redis *redis.Client
}

var Draws = NewDrawBroadcaster(nil)

func NewDrawBroadcaster(rdb *redis.Client) *DrawBroadcaster {
	return &DrawBroadcaster{hub: NewDrawHub(), redis: rdb}
}

func (b *DrawBroadcaster) Hub() *DrawHub {
	return b.hub
}

// Publish sends the draw, or JSON null when draw is nil.
func (b *DrawBroadcaster) Publish(ctx context.Context, draw *model.WinningNumbers) error {
	payload, err := json.Marshal(draw)
	if err != nil {
		return err
	}
	if b.redis != nil {
		return b.redis.Publish(ctx, constants.DRAW_CHANNEL, payload).Err()
	}
	b.hub.Broadcast(payload)
	return nil
}

// Relay forwards redis messages into the local hub until ctx is done.
func (b *DrawBroadcaster) Relay(ctx context.Context) {
	if b.redis == nil {
		return
	}
	pubsub := b.redis.Subscribe(ctx, constants.DRAW_CHANNEL)
	defer pubsub.Close()

	utils.Log.WithField("channel", constants.DRAW_CHANNEL).Info("draw relay subscribed")
	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			b.hub.Broadcast([]byte(msg.Payload))
		}
	}
}
