package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
)

var errBoom = errors.New("boom")

type FakeUserRepository struct {
	FetchUserByIDFn       func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUserByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	CreateUserFn          func(ctx context.Context, req user.User) (*user.User, error)
}

func (f *FakeUserRepository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return f.FetchUserByIDFn(ctx, id)
}

func (f *FakeUserRepository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.FetchUserByUsernameFn(ctx, username)
}

func (f *FakeUserRepository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.CreateUserFn(ctx, req)
}

type FakeFolderRepository struct {
	FetchFolderByIDFn  func(ctx context.Context, id folder.ID) (*folder.Folder, error)
	FetchUserFoldersFn func(ctx context.Context, userID int64) (folder.Folders, error)
	CreateFolderFn     func(ctx context.Context, req folder.Folder) (*folder.Folder, error)
	RenameFolderFn     func(ctx context.Context, id folder.ID, name string) (*folder.Folder, error)
	DeleteFolderFn     func(ctx context.Context, id folder.ID) ([]string, error)
}

func (f *FakeFolderRepository) FetchFolderByID(ctx context.Context, id folder.ID) (*folder.Folder, error) {
	return f.FetchFolderByIDFn(ctx, id)
}

func (f *FakeFolderRepository) FetchUserFolders(ctx context.Context, userID int64) (folder.Folders, error) {
	return f.FetchUserFoldersFn(ctx, userID)
}

func (f *FakeFolderRepository) CreateFolder(ctx context.Context, req folder.Folder) (*folder.Folder, error) {
	return f.CreateFolderFn(ctx, req)
}

func (f *FakeFolderRepository) RenameFolder(ctx context.Context, id folder.ID, name string) (*folder.Folder, error) {
	return f.RenameFolderFn(ctx, id, name)
}

func (f *FakeFolderRepository) DeleteFolder(ctx context.Context, id folder.ID) ([]string, error) {
	return f.DeleteFolderFn(ctx, id)
}

type FakeFileRepository struct {
	FetchFileByIDFn     func(ctx context.Context, id file.ID) (*file.File, error)
	FetchFolderFilesFn  func(ctx context.Context, folderID folder.ID) (file.Files, error)
	CreateFileFn        func(ctx context.Context, req file.File) (*file.File, error)
	DeleteFileFn        func(ctx context.Context, id file.ID) error
	FetchStoragePathsFn func(ctx context.Context) (map[string]struct{}, error)
}

func (f *FakeFileRepository) FetchFileByID(ctx context.Context, id file.ID) (*file.File, error) {
	return f.FetchFileByIDFn(ctx, id)
}

func (f *FakeFileRepository) FetchFolderFiles(ctx context.Context, folderID folder.ID) (file.Files, error) {
	return f.FetchFolderFilesFn(ctx, folderID)
}

func (f *FakeFileRepository) CreateFile(ctx context.Context, req file.File) (*file.File, error) {
	return f.CreateFileFn(ctx, req)
}

func (f *FakeFileRepository) DeleteFile(ctx context.Context, id file.ID) error {
	return f.DeleteFileFn(ctx, id)
}

func (f *FakeFileRepository) FetchStoragePaths(ctx context.Context) (map[string]struct{}, error) {
	return f.FetchStoragePathsFn(ctx)
}

// memBlobs is an in-memory blob store.
type memBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	modified  map[string]time.Time
	putErr    error
	removeErr error
	listErr   error
	puts      []string
	removes   []string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{
		objects:  map[string][]byte{},
		types:    map[string]string{},
		modified: map[string]time.Time{},
	}
}

func (m *memBlobs) Put(_ context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.puts = append(m.puts, key)
	if m.putErr != nil {
		return "", m.putErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if int64(len(b)) != size {
		return "", fmt.Errorf("size mismatch: got %d, declared %d", len(b), size)
	}
	m.objects[key] = b
	m.types[key] = contentType
	m.modified[key] = time.Now()

	return m.PublicURL(key), nil
}

func (m *memBlobs) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removes = append(m.removes, key)
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.objects, key)

	return nil
}

func (m *memBlobs) List(_ context.Context, _ string) ([]file.Blob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]file.Blob, 0, len(m.objects))
	for k, b := range m.objects {
		out = append(out, file.Blob{Key: k, Size: int64(len(b)), LastModified: m.modified[k]})
	}

	return out, nil
}

func (m *memBlobs) PublicURL(key string) string { return "https://cdn.test/" + key }

type fakeQueue struct {
	mu   sync.Mutex
	keys []string
}

func (q *fakeQueue) Enqueue(key, _ string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = append(q.keys, key)
	return true
}

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}
