package dto

import "time"

// SendMessageRequest body para POST /api/assistant/messages.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatMessageResponse mensaje de la conversación con el asistente.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationResponse historial de la conversación del usuario.
type ConversationResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// SuggestionResponse atajo de pregunta para iniciar una conversación.
type SuggestionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}
