package dto

// WebhookExtractionResponse campos extraídos de un payload de webhook.
type WebhookExtractionResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}
