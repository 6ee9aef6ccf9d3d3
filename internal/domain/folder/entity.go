package folder

import (
	"time"
)

type (
	ID     = int64
	Folder struct {
		ID     ID
		Name   string
		UserID int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Folders []*Folder
)

func (f *Folder) OwnedBy(userID int64) bool { return f != nil && f.UserID == userID }
