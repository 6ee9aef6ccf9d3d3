package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"file-uploader/internal/application/access"
	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/interface/web/validator"
)

const (
	MsgUnauthorized = "you are not authorized to view this resource"

	ParamFolderID = "folderId"
	ParamFileID   = "fileId"

	ctxFolder = "folder"
	ctxFile   = "file"
)

// Guard passes with nil or rejects the request with an Unauthorized or
// NotFound error.
type Guard func(c *gin.Context) error

// Guarded runs guards in order and stops at the first rejection.
func Guarded(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, g := range guards {
			err := g(c)
			if err == nil {
				continue
			}

			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				c.String(http.StatusUnauthorized, MsgUnauthorized)
				c.Abort()
			case errors.Is(err, domain.ErrNotFound):
				c.String(http.StatusNotFound, err.Error())
				c.Abort()
			default:
				_ = c.Error(err)
				c.Abort()
			}
			return
		}

		c.Next()
	}
}

func Authenticated() Guard {
	return func(c *gin.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return domain.ErrUnauthorized
		}
		return nil
	}
}

// FolderOwner resolves :folderId and stores the folder for the handler.
func FolderOwner(folderService ports.FolderService) Guard {
	return func(c *gin.Context) error {
		id, ok := validator.ParseID(c.Param(ParamFolderID))
		if !ok {
			return domain.NotFound("folder")
		}

		f, err := folderService.FindFolder(c.Request.Context(), id)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		u, _ := CurrentUser(c)
		if f == nil {
			return domain.NotFound("folder")
		}
		if u == nil {
			return domain.ErrUnauthorized
		}
		if err = access.Folder(u.ID, f); err != nil {
			return err
		}

		c.Set(ctxFolder, f)
		return nil
	}
}

// FileOwner resolves :fileId, checks ownership through the parent folder and
// that the file belongs to :folderId.
func FileOwner(fileService ports.FileService) Guard {
	return func(c *gin.Context) error {
		id, ok := validator.ParseID(c.Param(ParamFileID))
		if !ok {
			return domain.NotFound("file")
		}
		folderID, ok := validator.ParseID(c.Param(ParamFolderID))
		if !ok {
			return domain.NotFound("folder")
		}

		f, err := fileService.FindFile(c.Request.Context(), id)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		u, _ := CurrentUser(c)
		if f == nil {
			return domain.NotFound("file")
		}
		if u == nil {
			return domain.ErrUnauthorized
		}
		if err = access.File(u.ID, f, folderID); err != nil {
			return err
		}

		c.Set(ctxFile, f)
		return nil
	}
}

func CurrentFolder(c *gin.Context) (*folder.Folder, bool) {
	v, ok := c.Get(ctxFolder)
	if !ok {
		return nil, false
	}
	f, ok := v.(*folder.Folder)
	return f, ok && f != nil
}

func CurrentFile(c *gin.Context) (*file.File, bool) {
	v, ok := c.Get(ctxFile)
	if !ok {
		return nil, false
	}
	f, ok := v.(*file.File)
	return f, ok && f != nil
}
