package file

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"file-uploader/internal/domain/folder"
)

func TestFile_OwnerID(t *testing.T) {
	var nilFile *File
	_, ok := nilFile.OwnerID()
	assert.False(t, ok)

	_, ok = (&File{ID: 1}).OwnerID()
	assert.False(t, ok, "owner is unknown without the parent folder")

	owner, ok := (&File{ID: 1, Folder: &folder.Folder{ID: 2, UserID: 7}}).OwnerID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), owner)
}
