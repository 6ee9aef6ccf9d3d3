package file

import (
	"fmt"

	"file-uploader/internal/domain/file"
)

func ToView(f file.File) View {
	return View{
		ID:        f.ID,
		FolderID:  f.FolderID,
		Name:      f.Name,
		SizeBytes: f.SizeBytes,
		Size:      HumanSize(f.SizeBytes),
		MimeType:  f.MimeType,
		URL:       f.URL,
		CreatedAt: f.CreatedAt,
	}
}

func ToViews(fs file.Files) Views {
	vs := make(Views, len(fs))
	for idx, f := range fs {
		vs[idx] = ToView(*f)
	}

	return vs
}

// HumanSize formats n bytes with binary units: 1536 -> "1.5 KiB".
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
