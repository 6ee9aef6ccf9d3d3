package ports

import "context"

type (
	// OrphanQueue schedules removal of a blob that has no metadata record.
	OrphanQueue interface {
		Enqueue(key, reason string) bool
	}

	RabbitMQ interface {
		OrphanQueue
		Connect(ctx context.Context, dsn string) error
		Init() error
		PublisherWorker(ctx context.Context)
		Close() error
	}
)
