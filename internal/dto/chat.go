package dto

// ChatRequest is the payload accepted by the chatbot endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply carries the assistant answer back to the caller.
type ChatReply struct {
	Reply string `json:"reply"`
}
