package mqtt

import "testing"

func TestParseConversationID(t *testing.T) {
	id, err := ParseConversationID("visualizer/conversation/conv-42/segment", "visualizer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "conv-42" {
		t.Fatalf("id=%s, want conv-42", id)
	}
}

func TestParseConversationIDWithSlashedPrefix(t *testing.T) {
	id, err := ParseConversationID("org/visualizer/conversation/conv-1/affect", "org/visualizer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "conv-1" {
		t.Fatalf("id=%s, want conv-1", id)
	}
}

func TestParseConversationIDRejectsWrongPattern(t *testing.T) {
	if _, err := ParseConversationID("visualizer/terminal/x/segment", "visualizer"); err == nil {
		t.Fatalf("expected error for non-conversation topic")
	}
	if _, err := ParseConversationID("other/conversation/x/segment", "visualizer"); err == nil {
		t.Fatalf("expected error for prefix mismatch")
	}
	if _, err := ParseConversationID("visualizer/conversation", "visualizer"); err == nil {
		t.Fatalf("expected error for short topic")
	}
}
