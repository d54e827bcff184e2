package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"slug":     "must contain only lowercase letters, numbers and underscores",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientFormNotFound                  = "this form is not available"
	ErrClientFormValidation                = "some answers need to be corrected"
	ErrClientFormLocked                    = "this evaluation was already submitted and can no longer be edited"
	ErrClientSlugAlreadyExists             = "a form with that slug already exists"
	ErrClientInvalidSchema                 = "the form definition is invalid"
	ErrClientMessageNotFound               = "message not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientSituationNotFound             = "situation not found"
	ErrClientFileNotFound                  = "file not found"
	ErrClientFileTooLarge                  = "the file is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthNotAdmin              = "caller role is not admin"

	ErrDevTemplateNotFound  = "form template not found"
	ErrDevTemplateSlugTaken = "form template slug already exists"
	ErrDevSchemaIntegrity   = "form schema failed integrity checks"
	ErrDevAnswerValidation  = "dynamic answer validation failed"
	ErrDevResponseLocked    = "response exists for locked template slug"
	ErrDevImportMalformed   = "import payload is not a template array"

	ErrDevDBFailedToFindDocument     = "failed to find document on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	ErrDevRedisSet       = "failed to set value on redis"
	ErrDevRedisGetNoData = "failed to get value from redis"
	ErrDevRedisDelete    = "failed to delete value from redis"

	ErrDevCannotMarshalJSON = "cannot marshal JSON"

	ErrDevStorageUpload       = "failed to upload object to storage"
	ErrDevStoragePresignedURL = "failed to create presigned url"
	ErrDevQueuePublish        = "failed to publish message to queue"
)
