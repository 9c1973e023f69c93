package messaging

import "time"

type Conversation struct {
	ID            string    `json:"id"`
	GigID         string    `json:"gigId,omitempty"`
	GigTitle      string    `json:"gigTitle,omitempty"`
	ApplicationID string    `json:"applicationId"`
	CompanyID     string    `json:"companyId"`
	StudentID     string    `json:"studentId"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	Messages      []Message `json:"messages"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId,omitempty"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Last returns the newest message or nil for an empty thread.
func (c Conversation) Last() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
