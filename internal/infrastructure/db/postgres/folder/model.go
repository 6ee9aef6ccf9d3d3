package folder

import (
	"time"
)

type (
	Folder struct {
		ID     int64
		Name   string
		UserID int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Folders []*Folder
)
