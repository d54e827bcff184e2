package constvars

const (
	URLParamTemplateID   = "templateID"
	URLParamTemplateSlug = "slug"
	URLParamPatientID    = "patientID"
	URLParamMessageID    = "messageID"
	URLParamSituationID  = "situationID"
	URLParamScreenKey    = "screenKey"
	URLParamFileID       = "fileID"
)

const (
	QueryParamActiveOnly = "active"
)
