package kitchen

import "time"

// SaveDetailsRequest carries the form fields; images arrive alongside as
// multipart files.
type SaveDetailsRequest struct {
	KitchenType      string    `form:"kitchenType" binding:"required"`
	InstallationDate time.Time `form:"installationDate" binding:"required" time_format:"2006-01-02"`
	Size             string    `form:"size" binding:"required"`
	Location         string    `form:"location" binding:"required"`
}

// ImageUpload is a decoded multipart file ready for the blob store.
type ImageUpload struct {
	Name     string
	Content  []byte
	MimeType string
}
