package types

// ImageCollection stores uploaded images together with their bytes.
const ImageCollection = "images"

// Image is created from a multipart upload, never from a JSON body.
// Data is omitted from listings.
type Image struct {
	Meta         `bson:",inline"`
	Filename     string `json:"filename" bson:"filename" validate:"required"`
	OriginalName string `json:"originalName" bson:"originalName" validate:"required"`
	MimeType     string `json:"mimeType" bson:"mimeType" validate:"required"`
	Size         int64  `json:"size" bson:"size" validate:"gt=0"`
	Data         []byte `json:"data,omitempty" bson:"data,omitempty" validate:"required,min=1"`
}
