package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumina/api/lumina"
	"lumina/config"
	"lumina/models"
)

// ChatPollerService keeps one chat room fresh by polling the API. Each fetch
// starts only after the previous one returned, and a fetch that belongs to
// a room the caller already left is discarded.
type ChatPollerService struct {
	luminaAPI lumina.LuminaAPI
	log       *zap.SugaredLogger

	mu         sync.Mutex
	generation uint64
	room       string
	cancel     context.CancelFunc
	done       chan struct{}
	messages   []models.ChatMessage
	onMessages func(room string, msgs []models.ChatMessage)
}

// NewChatPollerService constructs a new poller.
func NewChatPollerService(luminaAPI lumina.LuminaAPI, log *zap.SugaredLogger) *ChatPollerService {
	return &ChatPollerService{
		luminaAPI: luminaAPI,
		log:       log,
	}
}

// OnMessages sets the callback that receives the full message list after
// every successful fetch.
func (cp *ChatPollerService) OnMessages(fn func(room string, msgs []models.ChatMessage)) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.onMessages = fn
}

// StartPeriodicJob starts polling room at the given interval, replacing any
// room being polled. The first fetch runs immediately. A non-positive
// interval uses the default chat poll interval.
func (cp *ChatPollerService) StartPeriodicJob(room string, interval time.Duration) {
	if interval <= 0 {
		interval = config.CHAT_POLL_INTERVAL_SECONDS * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// The old loop is swapped out in the same critical section that installs
	// the new one, so every loop is owned by exactly one caller.
	cp.mu.Lock()
	prevCancel, prevDone := cp.cancel, cp.done
	cp.generation++
	gen := cp.generation
	cp.room = room
	cp.cancel = cancel
	cp.done = done
	cp.messages = nil
	cp.mu.Unlock()

	if prevCancel != nil {
		prevCancel()
		<-prevDone
	}

	cp.log.Infof("[ChatPollerService] Polling room %q every %v", room, interval)
	go cp.startPeriodicJob(ctx, gen, room, interval, done)
}

func (cp *ChatPollerService) startPeriodicJob(ctx context.Context, gen uint64, room string, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		cp.poll(ctx, gen, room)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (cp *ChatPollerService) poll(ctx context.Context, gen uint64, room string) {
	msgs, err := cp.luminaAPI.GetChatMessages(ctx, room)
	if err != nil {
		if ctx.Err() == nil {
			cp.log.Warnf("[ChatPollerService] GetChatMessages failed for %q: %v", room, err)
		}
		return
	}
	sortMessages(msgs)

	cp.mu.Lock()
	if gen != cp.generation {
		cp.mu.Unlock()
		cp.log.Debugf("[ChatPollerService] Dropping stale fetch for %q", room)
		return
	}
	cp.messages = msgs
	fn := cp.onMessages
	cp.mu.Unlock()

	if fn != nil {
		fn(room, append([]models.ChatMessage(nil), msgs...))
	}
}

func sortMessages(msgs []models.ChatMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}

// Stop ends polling and waits for the loop to exit. Safe to call repeatedly.
func (cp *ChatPollerService) Stop() {
	cp.mu.Lock()
	cancel, done := cp.cancel, cp.done
	cp.generation++
	cp.cancel, cp.done = nil, nil
	cp.room = ""
	cp.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
		cp.log.Info("[ChatPollerService] Stopped")
	}
}

// Room returns the room being polled, or "".
func (cp *ChatPollerService) Room() string {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.room
}

// Messages returns the last fetched messages for the current room, oldest first.
func (cp *ChatPollerService) Messages() []models.ChatMessage {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return append([]models.ChatMessage(nil), cp.messages...)
}

// Send posts a message to room. Unknown message types are rejected before
// any request is made.
func (cp *ChatPollerService) Send(ctx context.Context, room string, msgType models.MessageType, content string) (*models.ChatMessage, error) {
	if !msgType.Valid() {
		return nil, fmt.Errorf("[ChatPollerService] unknown message type %q", msgType)
	}
	if room == "" {
		return nil, fmt.Errorf("[ChatPollerService] room is required")
	}

	msg := models.ChatMessage{
		ClientID:    uuid.NewString(),
		RoomSlug:    room,
		MessageType: msgType,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	posted, err := cp.luminaAPI.PostChatMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("[ChatPollerService] post to %q: %w", room, err)
	}
	return posted, nil
}
