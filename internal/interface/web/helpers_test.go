package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
	"file-uploader/internal/interface/web/middleware"
	"file-uploader/internal/interface/web/templates"
)

var (
	alice = &user.User{ID: 1, Username: "alice"}
	bob   = &user.User{ID: 2, Username: "bob"}

	taxes  = &folder.Folder{ID: 3, Name: "Taxes", UserID: 1}
	photos = &folder.Folder{ID: 4, Name: "Photos", UserID: 1}
	report = &file.File{
		ID: 9, Name: "report.pdf", SizeBytes: 2048, MimeType: "application/pdf",
		StoragePath: "users/1/folders/3/x-report.pdf", URL: "https://cdn.test/users/1/folders/3/x-report.pdf",
		FolderID: 3, Folder: taxes,
	}

	tokens = map[string]*user.User{"alice-token": alice, "bob-token": bob}
)

type FakeUserService struct {
	SignupFunc func(ctx context.Context, username, email, password string) (*user.User, error)
}

func (f *FakeUserService) Signup(ctx context.Context, username, email, password string) (*user.User, error) {
	if f.SignupFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SignupFunc(ctx, username, email, password)
}

type FakeAuthService struct {
	LoginFunc func(ctx context.Context, username, password string) (*user.User, error)
}

func (f *FakeAuthService) Login(ctx context.Context, username, password string) (*user.User, error) {
	if f.LoginFunc == nil {
		return nil, errors.New("not used")
	}
	return f.LoginFunc(ctx, username, password)
}

func (f *FakeAuthService) IssueToken(u *user.User) (string, error) {
	return u.Username + "-token", nil
}

func (f *FakeAuthService) Authenticate(_ context.Context, token string) (*user.User, error) {
	if u, ok := tokens[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthorized
}

type FakeFolderService struct {
	FindUserFoldersFunc func(ctx context.Context, userID user.ID) (folder.Folders, error)
	FindFolderFilesFunc func(ctx context.Context, id folder.ID) (file.Files, error)
	CreateFolderFunc    func(ctx context.Context, userID user.ID, name string) (*folder.Folder, error)
	RenameFolderFunc    func(ctx context.Context, id folder.ID, name string) (*folder.Folder, error)
	DeleteFolderFunc    func(ctx context.Context, f *folder.Folder) error
}

func (f *FakeFolderService) FindUserFolders(ctx context.Context, userID user.ID) (folder.Folders, error) {
	if f.FindUserFoldersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserFoldersFunc(ctx, userID)
}

func (f *FakeFolderService) FindFolder(_ context.Context, id folder.ID) (*folder.Folder, error) {
	for _, fl := range []*folder.Folder{taxes, photos} {
		if fl.ID == id {
			return fl, nil
		}
	}
	return nil, domain.NotFound("folder")
}

func (f *FakeFolderService) FindFolderFiles(ctx context.Context, id folder.ID) (file.Files, error) {
	if f.FindFolderFilesFunc == nil {
		return file.Files{}, nil
	}
	return f.FindFolderFilesFunc(ctx, id)
}

func (f *FakeFolderService) CreateFolder(ctx context.Context, userID user.ID, name string) (*folder.Folder, error) {
	if f.CreateFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFolderFunc(ctx, userID, name)
}

func (f *FakeFolderService) RenameFolder(ctx context.Context, id folder.ID, name string) (*folder.Folder, error) {
	if f.RenameFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RenameFolderFunc(ctx, id, name)
}

func (f *FakeFolderService) DeleteFolder(ctx context.Context, fl *folder.Folder) error {
	if f.DeleteFolderFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFolderFunc(ctx, fl)
}

type FakeFileService struct {
	UploadFileFunc func(ctx context.Context, parent *folder.Folder, in *multipart.FileHeader) (*file.File, error)
	DeleteFileFunc func(ctx context.Context, f *file.File) error
}

func (f *FakeFileService) FindFile(_ context.Context, id file.ID) (*file.File, error) {
	if id == report.ID {
		return report, nil
	}
	return nil, domain.NotFound("file")
}

func (f *FakeFileService) UploadFile(ctx context.Context, parent *folder.Folder, in *multipart.FileHeader) (*file.File, error) {
	if f.UploadFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadFileFunc(ctx, parent, in)
}

func (f *FakeFileService) DeleteFile(ctx context.Context, fl *file.File) error {
	if f.DeleteFileFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, fl)
}

type services struct {
	users   *FakeUserService
	auth    *FakeAuthService
	folders *FakeFolderService
	files   *FakeFileService
}

func newServices() *services {
	return &services{
		users:   &FakeUserService{},
		auth:    &FakeAuthService{},
		folders: &FakeFolderService{},
		files:   &FakeFileService{},
	}
}

func setupRouter(t *testing.T, s *services) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	cookie := middleware.CookieConfig{TTL: time.Hour}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Session(s.auth, cookie, logger))

	NewAuthController(r, logger, s.users, s.auth, cookie)
	NewFolderController(r, logger, s.folders)
	NewFileController(r, logger, s.folders, s.files)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values, token string) *httptest.ResponseRecorder {
	t.Helper()
	return doReq(t, r, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", token)
}

func postFile(t *testing.T, r *gin.Engine, path, fileName string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file"))
	}
	require.NoError(t, w.Close())

	return doReq(t, r, http.MethodPost, path, &b, w.FormDataContentType(), token)
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}
