package upload

// UploadRequest describes the multipart file received on POST /upload
type UploadRequest struct {
	FileName string `form:"file" validate:"required,max=255"`
	Size     int64  `form:"size" validate:"gte=0"`
}
