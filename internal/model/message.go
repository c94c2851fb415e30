package model

// NotificationMessage is the broadcast payload built for a single dispatch.
// It is never persisted.
type NotificationMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
	Topic string            `json:"topic"`
}

// DeliveryReceipt is the provider acknowledgement of a successful send.
type DeliveryReceipt struct {
	MessageID string `json:"message_id"`
}
