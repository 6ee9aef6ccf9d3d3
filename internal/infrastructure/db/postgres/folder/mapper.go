package folder

import (
	domain "file-uploader/internal/domain/folder"
)

func fromDBModel(model *Folder) *domain.Folder {
	var f = &domain.Folder{
		ID:     model.ID,
		Name:   model.Name,
		UserID: model.UserID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return f
}

func fromDBModels(models *Folders) domain.Folders {
	fs := make(domain.Folders, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
