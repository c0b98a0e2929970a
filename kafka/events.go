package kafka

import "time"

// MutationEvent announces a committed mutation to other consumers
type MutationEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Operation string    `json:"operation"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	EntityID  uint      `json:"entity_id,omitempty"`
	ActorRef  string    `json:"actor_ref"`
	Timestamp time.Time `json:"timestamp"`
}

// ReminderMessage asks the mail worker to send one payment reminder
type ReminderMessage struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	InvoiceID     uint      `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Email         string    `json:"email"`
	CustomerName  string    `json:"customer_name"`
	AmountDue     string    `json:"amount_due"`
	DueDate       time.Time `json:"due_date"`
	RequestedBy   string    `json:"requested_by"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeMutation        = "backoffice.mutation"
	EventTypePaymentReminder = "billing.payment_reminder"
)

// Kafka topics
const (
	TopicMutations        = "backoffice-mutations"
	TopicPaymentReminders = "payment-reminders"
)
