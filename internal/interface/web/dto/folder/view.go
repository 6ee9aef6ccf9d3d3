package folder

import "time"

type (
	View struct {
		ID        int64
		Name      string
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Views []View
)
