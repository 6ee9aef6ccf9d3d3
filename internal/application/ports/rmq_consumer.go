package ports

import "context"

// RMQConsumer drains the orphan-blob queue and removes each reported key.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
