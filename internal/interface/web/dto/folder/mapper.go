package folder

import (
	"file-uploader/internal/domain/folder"
)

func ToView(f folder.Folder) View {
	return View{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func ToViews(fs folder.Folders) Views {
	vs := make(Views, len(fs))
	for idx, f := range fs {
		vs[idx] = ToView(*f)
	}

	return vs
}
