package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain/folder"
	fileDTO "file-uploader/internal/interface/web/dto/file"
	folderDTO "file-uploader/internal/interface/web/dto/folder"
	"file-uploader/internal/interface/web/middleware"
	"file-uploader/internal/interface/web/validator"
)

var errNoFolderInContext = errors.New("folder handler reached without its guard")

type FolderController struct {
	logger        *zap.Logger
	folderService ports.FolderService
}

func NewFolderController(
	r *gin.Engine,
	logger *zap.Logger,
	folderService ports.FolderService,
) *FolderController {
	fc := &FolderController{
		logger:        logger,
		folderService: folderService,
	}

	authenticated := middleware.Guarded(middleware.Authenticated())
	folderOwner := middleware.Guarded(
		middleware.Authenticated(),
		middleware.FolderOwner(folderService),
	)

	r.GET(RouteHome, fc.HomeHandler)
	r.POST(RouteFolders, authenticated, fc.CreateFolderHandler)
	r.GET(RouteFolder, folderOwner, fc.GetFolderHandler)
	r.POST(RouteFolderDelete, folderOwner, fc.DeleteFolderHandler)
	r.POST(RouteFolderRename, folderOwner, fc.RenameFolderHandler)

	return fc
}

func (fc *FolderController) HomeHandler(c *gin.Context) {
	p := newPage(c, "Home")
	if p.User == nil {
		c.HTML(http.StatusOK, "index.html", p)
		return
	}

	folders, err := fc.folderService.FindUserFolders(c.Request.Context(), p.User.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	p.Folders = folderDTO.ToViews(folders)

	c.HTML(http.StatusOK, "index.html", p)
}

func (fc *FolderController) CreateFolderHandler(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var req folderDTO.Request
	if err := c.ShouldBind(&req); err != nil {
		fc.renderHome(c, u.ID, http.StatusBadRequest, "Invalid form", req.Name)
		return
	}

	name, err := validator.ValidateFolderName(req.Name)
	if err != nil {
		fc.renderHome(c, u.ID, http.StatusBadRequest, validationMessage(err), req.Name)
		return
	}

	f, err := fc.folderService.CreateFolder(c.Request.Context(), u.ID, name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fc.logger.Info("folder created", zap.Int64("folder_id", f.ID), zap.Int64("user_id", u.ID))
	redirect(c, RouteHome)
}

// renderHome re-renders the folder list with a form error.
func (fc *FolderController) renderHome(c *gin.Context, userID int64, status int, errMsg, attempted string) {
	p := newPage(c, "Home")
	p.Error = errMsg
	p.Name = attempted

	folders, err := fc.folderService.FindUserFolders(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	p.Folders = folderDTO.ToViews(folders)

	c.HTML(status, "index.html", p)
}

func (fc *FolderController) GetFolderHandler(c *gin.Context) {
	f, ok := middleware.CurrentFolder(c)
	if !ok {
		_ = c.Error(errNoFolderInContext)
		return
	}

	fc.renderFolder(c, http.StatusOK, f, "", "")
}

func (fc *FolderController) RenameFolderHandler(c *gin.Context) {
	f, ok := middleware.CurrentFolder(c)
	if !ok {
		_ = c.Error(errNoFolderInContext)
		return
	}

	var req folderDTO.Request
	if err := c.ShouldBind(&req); err != nil {
		fc.renderFolder(c, http.StatusBadRequest, f, "Invalid form", req.Name)
		return
	}

	name, err := validator.ValidateFolderName(req.Name)
	if err != nil {
		fc.renderFolder(c, http.StatusBadRequest, f, validationMessage(err), req.Name)
		return
	}

	if _, err = fc.folderService.RenameFolder(c.Request.Context(), f.ID, name); err != nil {
		_ = c.Error(err)
		return
	}

	redirect(c, folderPath(f.ID))
}

func (fc *FolderController) DeleteFolderHandler(c *gin.Context) {
	f, ok := middleware.CurrentFolder(c)
	if !ok {
		_ = c.Error(errNoFolderInContext)
		return
	}

	if err := fc.folderService.DeleteFolder(c.Request.Context(), f); err != nil {
		_ = c.Error(err)
		return
	}

	fc.logger.Info("folder deleted", zap.Int64("folder_id", f.ID))
	redirect(c, RouteHome)
}

func (fc *FolderController) renderFolder(c *gin.Context, status int, f *folder.Folder, errMsg, attempted string) {
	renderFolderPage(c, fc.folderService, status, f, errMsg, attempted)
}

// renderFolderPage is shared with the file handlers, which re-render the
// folder view on a rejected upload.
func renderFolderPage(
	c *gin.Context,
	folderService ports.FolderService,
	status int,
	f *folder.Folder,
	errMsg, attempted string,
) {
	files, err := folderService.FindFolderFiles(c.Request.Context(), f.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	p := newPage(c, f.Name)
	p.Folder = folderDTO.ToView(*f)
	p.Files = fileDTO.ToViews(files)
	p.Error = errMsg
	p.Name = attempted

	c.HTML(status, "folder.html", p)
}
