package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"file-uploader/internal/domain/user"
	fileDTO "file-uploader/internal/interface/web/dto/file"
	folderDTO "file-uploader/internal/interface/web/dto/folder"
	"file-uploader/internal/interface/web/middleware"
)

// page is the data every template renders from.
type page struct {
	Title string
	User  *user.User
	Error string

	// echoed form input
	Name     string
	Username string
	Email    string

	Folders folderDTO.Views
	Folder  folderDTO.View
	Files   fileDTO.Views
	File    fileDTO.View
}

func newPage(c *gin.Context, title string) page {
	u, _ := middleware.CurrentUser(c)
	return page{Title: title, User: u}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func folderPath(id int64) string {
	return fmt.Sprintf("%s/%d", RouteFolders, id)
}
