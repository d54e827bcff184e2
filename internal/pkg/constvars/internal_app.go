package constvars

type ContextKey string

const (
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

const (
	MongoCollectionUsers               = "users"
	MongoCollectionFormTemplates       = "form_templates"
	MongoCollectionFormResponses       = "form_responses"
	MongoCollectionDoctorMessages      = "doctor_messages"
	MongoCollectionWeeklyPlanning      = "weekly_planning"
	MongoCollectionPatientNextSteps    = "patient_next_steps"
	MongoCollectionDifficultSituations = "difficult_situations"
	MongoCollectionScreenTexts         = "screen_texts"
	MongoCollectionContentFiles        = "content_files"
	MongoCollectionCheckins            = "checkins"
)

// Next-step slugs pointing at a form template carry this prefix, e.g.
// "form:baseline_0_2".
const NextStepFormPrefix = "form:"

const (
	ActivityEventCheckinSubmitted    = "checkin.submitted"
	ActivityEventEvaluationSubmitted = "evaluation.submitted"
)

const RegexSlug = `^[a-z0-9_]+$`
