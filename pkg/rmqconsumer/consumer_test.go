package rmqconsumer

import (
	"context"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-uploader/config"
)

type FakeRemover struct {
	RemoveFn func(ctx context.Context, key string) error
	removed  []string
}

func (f *FakeRemover) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	if f.RemoveFn != nil {
		return f.RemoveFn(ctx, key)
	}
	return nil
}

type fakeAcknowledger struct {
	acked, nacked, requeued bool
}

func (a *fakeAcknowledger) Ack(uint64, bool) error { a.acked = true; return nil }
func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}
func (a *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}

func Test_delivery_Table(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		removeErr  error
		wantErr    bool
		wantAck    bool
		wantRemove []string
	}{
		{
			name:       "removed and acked",
			body:       `{"event_id":"0b7c","storage_key":"users/1/folders/2/a.txt","reason":"metadata insert failed"}`,
			wantAck:    true,
			wantRemove: []string{"users/1/folders/2/a.txt"},
		},
		{
			name:       "remove failure nacks",
			body:       `{"storage_key":"users/1/folders/2/b.txt"}`,
			removeErr:  errors.New("s3 down"),
			wantErr:    true,
			wantRemove: []string{"users/1/folders/2/b.txt"},
		},
		{
			name:    "malformed body nacks",
			body:    `{not json`,
			wantErr: true,
		},
		{
			name:    "missing key nacks",
			body:    `{"reason":"x"}`,
			wantErr: true,
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			remover := &FakeRemover{RemoveFn: func(context.Context, string) error { return tt.removeErr }}
			c := New(config.MQ{}, zap.NewNop(), remover)
			ack := &fakeAcknowledger{}

			err := c.delivery(context.Background(), amqp091.Delivery{
				Acknowledger: ack,
				DeliveryTag:  1,
				Body:         []byte(tt.body),
			})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, !tt.wantAck, ack.nacked)
			assert.False(t, ack.requeued)
			assert.Equal(t, tt.wantRemove, remover.removed)
		})
	}
}

func TestDeliveryWorker_ClosedChannel(t *testing.T) {
	ch := make(chan amqp091.Delivery)
	close(ch)

	c := New(config.MQ{}, zap.NewNop(), &FakeRemover{})
	c.chDelivery = ch

	c.DeliveryWorker(context.Background())
}

func TestConnect_InvalidDSN(t *testing.T) {
	c := New(config.MQ{}, zap.NewNop(), &FakeRemover{})

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
