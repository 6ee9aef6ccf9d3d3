package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	fileDTO "file-uploader/internal/interface/web/dto/file"
	folderDTO "file-uploader/internal/interface/web/dto/folder"
	"file-uploader/internal/interface/web/middleware"
)

// multipart framing on top of the file itself
const multipartOverhead int64 = 1 << 20

var errNoFileInContext = errors.New("file handler reached without its guard")

type FileController struct {
	logger        *zap.Logger
	folderService ports.FolderService
	fileService   ports.FileService
}

func NewFileController(
	r *gin.Engine,
	logger *zap.Logger,
	folderService ports.FolderService,
	fileService ports.FileService,
) *FileController {
	fc := &FileController{
		logger:        logger,
		folderService: folderService,
		fileService:   fileService,
	}

	folderOwner := middleware.Guarded(
		middleware.Authenticated(),
		middleware.FolderOwner(folderService),
	)
	fileOwner := middleware.Guarded(
		middleware.Authenticated(),
		middleware.FolderOwner(folderService),
		middleware.FileOwner(fileService),
	)

	r.POST(RouteFolderUpload, folderOwner, fc.UploadFileHandler)
	r.GET(RouteFile, fileOwner, fc.GetFileHandler)
	r.POST(RouteFileDelete, fileOwner, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	parent, ok := middleware.CurrentFolder(c)
	if !ok {
		_ = c.Error(errNoFolderInContext)
		return
	}

	limit := file.MaxUploadSize + multipartOverhead
	if c.Request.ContentLength > limit {
		fc.rejectUpload(c, parent, http.StatusRequestEntityTooLarge, "File is larger than 50 MiB")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		switch {
		case errors.As(err, &mbe):
			fc.rejectUpload(c, parent, http.StatusRequestEntityTooLarge, "File is larger than 50 MiB")
		case errors.Is(err, http.ErrMissingFile):
			fc.rejectUpload(c, parent, http.StatusBadRequest, "Please choose a file to upload")
		default:
			fc.rejectUpload(c, parent, http.StatusBadRequest, "The upload could not be read")
		}
		return
	}

	f, err := fc.fileService.UploadFile(c.Request.Context(), parent, fh)
	if err != nil {
		var um *domain.UnsupportedMediaError
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &um):
			fc.rejectUpload(c, parent, middleware.StatusFor(err), um.Reason)
		case errors.As(err, &ve):
			fc.rejectUpload(c, parent, http.StatusBadRequest, ve.Message)
		default:
			_ = c.Error(err)
		}
		return
	}

	fc.logger.Info("file uploaded",
		zap.Int64("file_id", f.ID),
		zap.Int64("folder_id", parent.ID),
		zap.Int64("size", f.SizeBytes),
	)
	redirect(c, folderPath(parent.ID))
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	f, ok := middleware.CurrentFile(c)
	if !ok || f.Folder == nil {
		_ = c.Error(errNoFileInContext)
		return
	}

	p := newPage(c, f.Name)
	p.File = fileDTO.ToView(*f)
	p.Folder = folderDTO.ToView(*f.Folder)

	c.HTML(http.StatusOK, "file.html", p)
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	f, ok := middleware.CurrentFile(c)
	if !ok {
		_ = c.Error(errNoFileInContext)
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), f); err != nil {
		_ = c.Error(err)
		return
	}

	fc.logger.Info("file deleted", zap.Int64("file_id", f.ID), zap.Int64("folder_id", f.FolderID))
	redirect(c, folderPath(f.FolderID))
}

// rejectUpload re-renders the folder with the reason the upload was refused.
func (fc *FileController) rejectUpload(c *gin.Context, parent *folder.Folder, status int, msg string) {
	renderFolderPage(c, fc.folderService, status, parent, msg, "")
}
