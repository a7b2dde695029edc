package s3

// SignatureImage is a captured signature image destined for object storage
type SignatureImage struct {
	ObjectKey string      `json:"object_key"`
	Data      []byte      `json:"data"`
	Format    ImageFormat `json:"format"`
}

type ImageFormat string

const (
	ImageFormatPng ImageFormat = "png"
)

func NewSignatureImage(objectKey string, data []byte) *SignatureImage {
	return &SignatureImage{
		ObjectKey: objectKey,
		Data:      data,
		Format:    ImageFormatPng,
	}
}
