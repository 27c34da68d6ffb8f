package domain

import (
	"time"

	"github.com/lior25659567/emotion-visualizer/internal/affect"
)

type AnalyzeRequest struct {
	Text              string `json:"text"`
	ConversationStart bool   `json:"conversation_start,omitempty"`
	// ConversationID opts the segment into persistence when a store is
	// configured.
	ConversationID string `json:"conversation_id,omitempty"`
	SegmentID      string `json:"segment_id,omitempty"`
}

type AnalyzeResponse struct {
	affect.Descriptor
	SegmentID string  `json:"segment_id,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

// SegmentRecord is one persisted analysis result, keyed by segment ID
// within a conversation.
type SegmentRecord struct {
	SegmentID      string            `json:"segment_id"`
	ConversationID string            `json:"conversation_id"`
	Text           string            `json:"text"`
	Descriptor     affect.Descriptor `json:"descriptor"`
	CreatedAt      time.Time         `json:"created_at"`
}

// MQTT payloads

// SegmentEvent arrives from the transcription side per finished segment.
type SegmentEvent struct {
	SegmentID         string `json:"segment_id,omitempty"`
	ConversationID    string `json:"conversation_id,omitempty"`
	Text              string `json:"text"`
	ConversationStart bool   `json:"conversation_start,omitempty"`
}

// AffectEvent goes out to the renderer once a segment is scored.
type AffectEvent struct {
	SegmentID      string            `json:"segment_id"`
	ConversationID string            `json:"conversation_id"`
	Descriptor     affect.Descriptor `json:"descriptor"`
}
