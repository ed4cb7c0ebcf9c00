package anthropic

// MessagesRequest is the request body for the Anthropic Messages API.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// Message is a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessagesResponse is the response body from the Anthropic Messages API.
type MessagesResponse struct {
	ID      string         `json:"id"`
	Content []ContentBlock `json:"content"`
	Model   string         `json:"model"`
}

// ContentBlock is a single content segment of a response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
