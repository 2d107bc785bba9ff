package chat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Message roles on the chat transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Validate checks a single inbound message.
func (m Message) Validate() error {
	switch m.Role {
	case RoleUser, RoleAssistant, RoleSystem:
	default:
		return fmt.Errorf("invalid message role %q", m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("message content is required")
	}
	return nil
}

// Canned assistant replies. Responses are general health guidance with no
// connection to the question asked.
var sampleResponses = []string{
	"Based on the symptoms you've described, this could be consistent with several conditions. It's important to consult with your healthcare provider for a proper diagnosis.",
	"Regular exercise, a balanced diet, adequate sleep, and stress management are fundamental pillars of maintaining good health. Would you like more specific information about any of these areas?",
	"It's generally recommended to have an annual check-up with your primary care physician, even if you feel healthy. Regular screenings can help detect potential issues early.",
	"While I can provide general medical information, I can't diagnose specific conditions or prescribe treatments. It's important to discuss your symptoms with a qualified healthcare professional.",
	"Staying hydrated is crucial for many bodily functions. The general recommendation is about 8 glasses (64 ounces) of water per day, but individual needs may vary based on activity level, climate, and overall health.",
	"Many medications need to be taken consistently to maintain therapeutic levels in your system. If you've missed a dose, check the medication instructions or consult with your pharmacist about the appropriate action.",
	"Fever, cough, and fatigue can be symptoms of many different conditions, ranging from common cold to more serious infections. If symptoms persist or worsen, it's advisable to seek medical attention.",
	"Maintaining a healthy weight involves balancing caloric intake with physical activity. Small, sustainable lifestyle changes often lead to better long-term results than drastic diets.",
	"Sleep plays a vital role in physical health and emotional wellbeing. Adults typically need 7-9 hours of quality sleep per night. Consistent sleep schedules and a relaxing bedtime routine can help improve sleep quality.",
}

const apologyResponse = "I'm sorry, I encountered an error processing your request. Please try again or contact support if the issue persists."

// Service answers chat conversations with canned assistant replies.
type Service struct {
	delay     time.Duration
	randIndex func(n int) int
}

// NewService returns a chat service. delay simulates processing time per
// reply and may be zero.
func NewService(delay time.Duration) *Service {
	return &Service{
		delay:     delay,
		randIndex: rand.IntN,
	}
}

// Reply answers a conversation. The conversation must contain at least one
// valid message; any internal failure degrades to an apology reply rather
// than an error.
func (s *Service) Reply(ctx context.Context, conversation []Message) (Message, error) {
	if len(conversation) == 0 {
		return Message{}, fmt.Errorf("conversation is empty")
	}
	for i, m := range conversation {
		if err := m.Validate(); err != nil {
			return Message{}, fmt.Errorf("message %d: %w", i, err)
		}
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Message{Role: RoleAssistant, Content: apologyResponse}, nil
		case <-t.C:
		}
	}

	i := s.randIndex(len(sampleResponses))
	if i < 0 || i >= len(sampleResponses) {
		return Message{Role: RoleAssistant, Content: apologyResponse}, nil
	}
	return Message{Role: RoleAssistant, Content: sampleResponses[i]}, nil
}
