package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels used by the services.
const (
	UploadSuccess       = "upload_success"
	UploadRejected      = "upload_rejected"
	UploadStorageError  = "upload_storage_error"
	UploadCompensated   = "upload_compensated"
	BlobRemoveFailed    = "blob_remove_failed"
	OrphanEnqueued      = "orphan_enqueued"
	OrphanSwept         = "orphan_swept"
	LoginSuccess        = "login_success"
	LoginFailed         = "login_failed"
	SignupSuccess       = "signup_success"
	FolderDeleteSuccess = "folder_delete_success"
	FileDeleteSuccess   = "file_delete_success"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fileuploader",
			Name:      "general_counters",
		},
		[]string{"result"})
}

// NewUnregisteredCounter is the same vector without the default registry, for tests.
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fileuploader",
			Name:      "general_counters",
		},
		[]string{"result"})
}
