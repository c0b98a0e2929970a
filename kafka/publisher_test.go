package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishMutation(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicMutations {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "car_7" {
			return errors.New("wrong key " + string(key))
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	err := p.PublishMutation(context.Background(), MutationEvent{
		Operation: "DeleteCar",
		Resource:  "car",
		Action:    "delete",
		EntityID:  7,
		ActorRef:  "user_admin",
	})

	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublisher_PublishReminder_Failure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishReminder(context.Background(), ReminderMessage{InvoiceID: 3, Email: "a@example.com"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestConsumer_Dispatch(t *testing.T) {
	c := &Consumer{handlers: make(map[string][]MutationHandler)}

	var got []MutationEvent
	c.RegisterHandler("invoice", func(ctx context.Context, event MutationEvent) error {
		got = append(got, event)
		return nil
	})

	body, err := json.Marshal(MutationEvent{EventID: "e1", Resource: "invoice", Operation: "CreateInvoice"})
	require.NoError(t, err)

	headers := []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte(EventTypeMutation)}}
	c.Dispatch(context.Background(), &sarama.ConsumerMessage{Topic: TopicMutations, Value: body, Headers: headers})

	other, err := json.Marshal(MutationEvent{EventID: "e2", Resource: "car"})
	require.NoError(t, err)
	c.Dispatch(context.Background(), &sarama.ConsumerMessage{Topic: TopicMutations, Value: other, Headers: headers})

	c.Dispatch(context.Background(), &sarama.ConsumerMessage{Topic: TopicMutations, Value: []byte("{}")})

	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].EventID)
}

func TestLocalBus_DispatchesByResource(t *testing.T) {
	bus := NewLocalBus()
	var seen []string
	bus.RegisterHandler("invoice", func(_ context.Context, e MutationEvent) error {
		seen = append(seen, e.Operation)
		return nil
	})
	bus.RegisterHandler("invoice", func(context.Context, MutationEvent) error {
		return errors.New("cache down")
	})

	ctx := context.Background()
	require.NoError(t, bus.PublishMutation(ctx, MutationEvent{Operation: "CreateInvoice", Resource: "invoice"}))
	require.NoError(t, bus.PublishMutation(ctx, MutationEvent{Operation: "CreateCar", Resource: "car"}))
	require.NoError(t, bus.PublishReminder(ctx, ReminderMessage{InvoiceID: 1, Email: "ravi@example.com"}))

	assert.Equal(t, []string{"CreateInvoice"}, seen)
}
