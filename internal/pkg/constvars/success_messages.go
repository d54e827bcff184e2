package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	ProfileSuccess  = "get profile successfully"

	// Template authoring messages
	ListTemplatesSuccess   = "form templates fetched successfully"
	FindTemplateSuccess    = "form template fetched successfully"
	CreateTemplateSuccess  = "form template created successfully"
	UpdateTemplateSuccess  = "form template updated successfully"
	PublishTemplateSuccess = "form template published successfully"
	DeleteTemplateSuccess  = "form template deleted successfully"
	ExportTemplatesSuccess = "form templates exported successfully"
	ImportTemplatesSuccess = "form templates imported successfully"

	// Form response messages
	RenderFormSuccess    = "form fetched successfully"
	SubmitFormSuccess    = "answers saved successfully"
	FindResponseSuccess  = "response fetched successfully"
	ListResponsesSuccess = "responses fetched successfully"

	// Patient messages
	ListPatientsSuccess  = "patients fetched successfully"
	FindPatientSuccess   = "patient fetched successfully"
	PatientReviewSuccess = "patient responses fetched successfully"

	// Doctor message messages
	ListMessagesSuccess  = "messages fetched successfully"
	ActiveMessageSuccess = "active message fetched successfully"
	CreateMessageSuccess = "message created successfully"
	UpdateMessageSuccess = "message updated successfully"
	DeleteMessageSuccess = "message deleted successfully"

	// Planning messages
	ListPlanningSuccess = "weekly planning fetched successfully"
	SavePlanningSuccess = "weekly planning saved successfully"

	// Next-step messages
	NextStepSuccess     = "next step fetched successfully"
	SaveNextStepSuccess = "next step saved successfully"
	EnabledFormsSuccess = "enabled forms fetched successfully"

	// Situation messages
	ListSituationsSuccess  = "situations fetched successfully"
	CreateSituationSuccess = "situation created successfully"
	UpdateSituationSuccess = "situation updated successfully"
	DeleteSituationSuccess = "situation deleted successfully"

	// Content messages
	ListScreenTextsSuccess  = "screen texts fetched successfully"
	SaveScreenTextSuccess   = "screen text saved successfully"
	ListContentFilesSuccess = "content files fetched successfully"
	UploadContentSuccess    = "content file uploaded successfully"
	DownloadContentSuccess  = "download url created successfully"
	DeleteContentSuccess    = "content file deleted successfully"

	// Check-in messages
	SubmitCheckinSuccess = "check-in submitted successfully"
	ListCheckinsSuccess  = "check-ins fetched successfully"
)
