package mqtt

import "fmt"

func TopicConversationSegments(prefix string) string {
	return fmt.Sprintf("%s/conversation/+/segment", prefix)
}

func TopicSegment(prefix, conversationID string) string {
	return fmt.Sprintf("%s/conversation/%s/segment", prefix, conversationID)
}

func TopicAffect(prefix, conversationID string) string {
	return fmt.Sprintf("%s/conversation/%s/affect", prefix, conversationID)
}
