package file

import (
	domain "file-uploader/internal/domain/file"
	domainFolder "file-uploader/internal/domain/folder"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:       model.ID,
		FolderID: model.FolderID,

		Name:        model.Name,
		SizeBytes:   model.SizeBytes,
		MimeType:    model.MimeType,
		StoragePath: model.StoragePath,
		URL:         model.URL,

		CreatedAt: model.CreatedAt,
	}
	if model.Folder != nil {
		f.Folder = &domainFolder.Folder{
			ID:        model.Folder.ID,
			Name:      model.Folder.Name,
			UserID:    model.Folder.UserID,
			CreatedAt: model.Folder.CreatedAt,
			UpdatedAt: model.Folder.UpdatedAt,
		}
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
