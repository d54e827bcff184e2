package models

// DoctorMessage is a broadcast note from the clinician to patients. Only
// active messages are visible patient-side; the newest active one is shown.
type DoctorMessage struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Content   string `json:"content" bson:"content"`
	AudioURL  string `json:"audio_url,omitempty" bson:"audioUrl,omitempty"`
	IsActive  bool   `json:"is_active" bson:"isActive"`
	TimeModel `bson:",inline"`
}
