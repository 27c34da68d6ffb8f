package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/lior25659567/emotion-visualizer/internal/affect"
	"github.com/lior25659567/emotion-visualizer/internal/domain"
)

type HubConfig struct {
	BrokerURL   string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// SegmentSaver is the optional persistence hook; a nil saver means the hub
// only relays descriptors to the renderer.
type SegmentSaver interface {
	SaveSegment(ctx context.Context, segmentID, conversationID, text string, d affect.Descriptor) (string, error)
}

// Hub bridges the transcription side and the renderer: it subscribes to
// per-conversation segment events, scores them, and publishes the affect
// descriptor back on the conversation's affect topic.
type Hub struct {
	cfg      HubConfig
	client   paho.Client
	analyzer *affect.Analyzer
	saver    SegmentSaver
	logger   *slog.Logger
}

func NewHub(cfg HubConfig, analyzer *affect.Analyzer, saver SegmentSaver, logger *slog.Logger) *Hub {
	return &Hub{
		cfg:      cfg,
		analyzer: analyzer,
		saver:    saver,
		logger:   logger,
	}
}

func (h *Hub) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(h.cfg.BrokerURL).
		SetClientID(h.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	if h.cfg.Username != "" {
		opts.SetUsername(h.cfg.Username)
		opts.SetPassword(h.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		h.logger.Error("mqtt connection lost", "error", err)
	})

	h.client = paho.NewClient(opts)
	if token := h.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	topic := TopicConversationSegments(h.cfg.TopicPrefix)
	if token := h.client.Subscribe(topic, 1, h.handleSegment); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	go func() {
		<-ctx.Done()
		h.client.Disconnect(100)
	}()

	return nil
}

func (h *Hub) handleSegment(_ paho.Client, msg paho.Message) {
	conversationID, err := ParseConversationID(msg.Topic(), h.cfg.TopicPrefix)
	if err != nil {
		h.logger.Warn("skip invalid segment topic", "topic", msg.Topic(), "error", err)
		return
	}

	var event domain.SegmentEvent
	if err := json.Unmarshal(msg.Payload(), &event); err != nil {
		// backward compatible: payload can be the bare segment text
		event = domain.SegmentEvent{Text: string(msg.Payload())}
	}
	if event.ConversationID == "" {
		event.ConversationID = conversationID
	}
	if event.ConversationID != conversationID {
		h.logger.Warn("segment conversation mismatch", "topic_conversation", conversationID, "payload_conversation", event.ConversationID)
		return
	}
	if event.SegmentID == "" {
		event.SegmentID = uuid.NewString()
	}

	descriptor := h.analyzer.AnalyzeSegment(event.Text, event.ConversationStart)

	if h.saver != nil && strings.TrimSpace(event.Text) != "" {
		if _, err := h.saver.SaveSegment(context.Background(), event.SegmentID, conversationID, event.Text, descriptor); err != nil {
			h.logger.Warn("segment save failed", "segment_id", event.SegmentID, "error", err)
		}
	}

	if err := h.PublishAffect(conversationID, domain.AffectEvent{
		SegmentID:      event.SegmentID,
		ConversationID: conversationID,
		Descriptor:     descriptor,
	}); err != nil {
		h.logger.Warn("affect publish failed", "segment_id", event.SegmentID, "error", err)
		return
	}

	h.logger.Info("segment scored",
		"conversation_id", conversationID,
		"segment_id", event.SegmentID,
		"primary_emotion", descriptor.Primary(),
		"confidence", descriptor.Confidence,
	)
}

func (h *Hub) PublishAffect(conversationID string, event domain.AffectEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	topic := TopicAffect(h.cfg.TopicPrefix, conversationID)
	if token := h.client.Publish(topic, 1, false, body); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}
