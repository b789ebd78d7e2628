package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"zoracom_vms/internal/domain/entities"
)

// uploadsField is the multipart field name carrying attached documents.
const uploadsField = "uploads"

// maxUploadBytes caps a single uploaded document. Attachment bytes live
// in the item row, so the cap stays under the DynamoDB item limit.
const maxUploadBytes = 350 * 1024

var errUploadTooLarge = errors.New("uploaded file exceeds size limit")

// readUploads drains the file parts of a multipart request. A
// non-multipart request yields no uploads rather than an error.
func readUploads(c *gin.Context) ([]entities.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	files := form.File[uploadsField]
	uploads := make([]entities.FileUpload, 0, len(files))
	for _, header := range files {
		if header.Size > maxUploadBytes {
			return nil, errUploadTooLarge
		}

		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		uploads = append(uploads, entities.FileUpload{
			Name:     header.Filename,
			Size:     int64(len(data)),
			MimeType: mimeType,
			Bytes:    data,
		})
	}
	return uploads, nil
}
