package chat

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id"`
}

type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

// PromptsResponse seeds the chat widget.
type PromptsResponse struct {
	Greeting string   `json:"greeting"`
	Prompts  []string `json:"prompts"`
}
