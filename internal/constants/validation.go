package constants

// Upload
const (
	MaxGalleryImages = 4
	FormFieldFile    = "file"
	FormFieldFiles   = "files"
	FormFieldIcon    = "icon"
)
