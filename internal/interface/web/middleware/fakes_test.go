package middleware

import (
	"context"
	"errors"
	"mime/multipart"

	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
)

type FakeAuthService struct {
	LoginFunc        func(ctx context.Context, username, password string) (*user.User, error)
	IssueTokenFunc   func(u *user.User) (string, error)
	AuthenticateFunc func(ctx context.Context, token string) (*user.User, error)
}

func (f *FakeAuthService) Login(ctx context.Context, username, password string) (*user.User, error) {
	if f.LoginFunc == nil {
		return nil, errors.New("not used")
	}
	return f.LoginFunc(ctx, username, password)
}

func (f *FakeAuthService) IssueToken(u *user.User) (string, error) {
	if f.IssueTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.IssueTokenFunc(u)
}

func (f *FakeAuthService) Authenticate(ctx context.Context, token string) (*user.User, error) {
	if f.AuthenticateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.AuthenticateFunc(ctx, token)
}

type FakeFolderService struct {
	FindFolderFunc func(ctx context.Context, id folder.ID) (*folder.Folder, error)
}

func (f *FakeFolderService) FindUserFolders(context.Context, user.ID) (folder.Folders, error) {
	return nil, errors.New("not used")
}

func (f *FakeFolderService) FindFolder(ctx context.Context, id folder.ID) (*folder.Folder, error) {
	if f.FindFolderFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFolderFunc(ctx, id)
}

func (f *FakeFolderService) FindFolderFiles(context.Context, folder.ID) (file.Files, error) {
	return nil, errors.New("not used")
}

func (f *FakeFolderService) CreateFolder(context.Context, user.ID, string) (*folder.Folder, error) {
	return nil, errors.New("not used")
}

func (f *FakeFolderService) RenameFolder(context.Context, folder.ID, string) (*folder.Folder, error) {
	return nil, errors.New("not used")
}

func (f *FakeFolderService) DeleteFolder(context.Context, *folder.Folder) error {
	return errors.New("not used")
}

type FakeFileService struct {
	FindFileFunc func(ctx context.Context, id file.ID) (*file.File, error)
}

func (f *FakeFileService) FindFile(ctx context.Context, id file.ID) (*file.File, error) {
	if f.FindFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileFunc(ctx, id)
}

func (f *FakeFileService) UploadFile(context.Context, *folder.Folder, *multipart.FileHeader) (*file.File, error) {
	return nil, errors.New("not used")
}

func (f *FakeFileService) DeleteFile(context.Context, *file.File) error {
	return errors.New("not used")
}
