package models

// ScreenText is admin-editable copy for one patient-facing screen.
type ScreenText struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	ScreenKey string `json:"screen_key" bson:"screenKey"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Content   string `json:"content,omitempty" bson:"content,omitempty"`
	TimeModel `bson:",inline"`
}

// ContentFile is the metadata of an admin-uploaded file whose bytes live in
// object storage under ObjectKey.
type ContentFile struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	FileType    string `json:"file_type" bson:"fileType"`
	ObjectKey   string `json:"-" bson:"objectKey"`
	SizeInBytes int64  `json:"size_in_bytes" bson:"sizeInBytes"`
	TimeModel   `bson:",inline"`
}
