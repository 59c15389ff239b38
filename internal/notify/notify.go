package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/betcha-app/betcha/pkg/clients"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

// Event is the fire-and-forget notification payload. Delivery is at most
// once; nothing in the engine derives correctness from it.
type Event struct {
	Type    string    `json:"type"`
	UserID  int       `json:"user_id,omitempty"`
	WagerID int       `json:"wager_id,omitempty"`
	ClashID int       `json:"clash_id,omitempty"`
	RaidID  int       `json:"raid_id,omitempty"`
	Level   int       `json:"level,omitempty"`
	At      time.Time `json:"at"`
}

const (
	EventWagerCreated   = "wager_created"
	EventClashCreated   = "clash_created"
	EventProofRequested = "proof_requested"
	EventProofSubmitted = "proof_submitted"
	EventClashCompleted = "clash_completed"
	EventClashDisputed  = "clash_disputed"
	EventRaidStarted    = "raid_started"
	EventRaidDefended   = "raid_defended"
	EventRaidClaimed    = "raid_claimed"
	EventRaidTimedOut   = "raid_timed_out"
	EventHeatProposed   = "heat_proposed"
	EventHeatConfirmed  = "heat_confirmed"
	EventHeatRejected   = "heat_rejected"
)

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Service fans events out to an optional webhook and to in-process
// subscribers keyed by raid id. Both paths are best effort.
type Service struct {
	webhookURL string
	client     clients.HTTPClientI

	mu   sync.RWMutex
	subs map[int][]chan Event
}

func New(webhookURL string, client clients.HTTPClientI) *Service {
	return &Service{
		webhookURL: webhookURL,
		client:     client,
		subs:       make(map[int][]chan Event),
	}
}

// Publish never blocks the caller on delivery; the webhook POST runs in its
// own goroutine.
func (s *Service) Publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	s.fanOut(event)

	if s.webhookURL == "" {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal event", zap.Error(err))
		return
	}
	go s.deliver(event.Type, body)
}

func (s *Service) deliver(eventType string, body []byte) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, _, err := s.client.Post(s.webhookURL, headers, body)
	if err != nil {
		zap.L().Warn("event webhook delivery failed", zap.String("type", eventType), zap.Error(err))
		return
	}
	if status >= http.StatusBadRequest {
		zap.L().Warn("event webhook rejected", zap.String("type", eventType), zap.Int("status", status))
	}
}

// Subscribe returns a channel of events for one raid. Slow subscribers have
// events dropped rather than blocking the publisher.
func (s *Service) Subscribe(raidID int) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	s.mu.Lock()
	s.subs[raidID] = append(s.subs[raidID], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		chans := s.subs[raidID]
		for i, c := range chans {
			if c == ch {
				s.subs[raidID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		if len(s.subs[raidID]) == 0 {
			delete(s.subs, raidID)
		}
	}
	return ch, cancel
}

func (s *Service) fanOut(event Event) {
	if event.RaidID == 0 {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs[event.RaidID] {
		select {
		case ch <- event:
		default:
		}
	}
}
