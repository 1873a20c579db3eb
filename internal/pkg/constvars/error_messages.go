package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number":  "must be a valid phone number with country code",
	"user_role":     "must be either 'doctor' or 'patient'",
	"date_yyyymmdd": "must be a valid date in YYYY-MM-DD format",
	"time_hhmm":     "must be a valid time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized for this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPatientAlreadyRegistered      = "patient already registered"
	ErrClientInvalidTimeFormat             = "invalid date or time format"
	ErrClientInvalidTimestamp              = "invalid timestamp value"
	ErrClientInvalidSlotWindow             = "daily start time must be earlier than daily end time"
	ErrClientInvalidBreakWindow            = "break window must fit within the daily working window"
	ErrClientSlotNotFound                  = "slot not found"
	ErrClientSlotAlreadyBooked             = "slot already booked"
	ErrClientSlotBeingBooked               = "slot is being booked by another request, please retry"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientVaccinationNotFound           = "vaccination record not found"
	ErrClientLabReportNotFound             = "lab report not found"
	ErrClientFileTooLarge                  = "uploaded file exceeds the maximum allowed size"
	ErrClientInvalidFileFormat             = "uploaded file format is not allowed"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "request validation failed"
	ErrDevInvalidRequestPayload       = "invalid request payload"
	ErrDevCannotParseJSON             = "failed to parse JSON body"
	ErrDevCannotParseMultipartForm    = "failed to parse multipart form"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevServerProcess               = "server failed to process the request"
	ErrDevURLParamMissing             = "missing required URL parameter: %s"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevInvalidCredentials          = "credentials do not match any user"
	ErrDevEmailAlreadyExists          = "email already exists in users collection"
	ErrDevAuthTokenMissing            = "authorization token is missing"
	ErrDevAuthGenerateToken           = "failed to generate JWT token"
	ErrDevAuthTokenInvalidOrExpired   = "JWT token is invalid or expired"
	ErrDevAuthInvalidSession          = "session not found or expired"
	ErrDevRoleTypeDoesntMatch         = "user role does not allow this operation"
	ErrDevInvalidTimeFormat           = "date or time component is malformed or out of range"
	ErrDevInvalidTimestamp            = "timestamp must be a positive millisecond value"
	ErrDevInvalidSlotWindow           = "slot window invariant violated"
	ErrDevSlotNotFound                = "slot document not found"
	ErrDevSlotAlreadyBooked           = "slot isBooked flag already set"
	ErrDevSlotLockNotAcquired         = "failed to acquire booking lock for slot"
	ErrDevDBFailedToFindDocument      = "failed to find document on the database"
	ErrDevDBFailedToInsertDocument    = "failed to insert document to the database"
	ErrDevDBFailedToUpdateDocument    = "failed to update document on the database"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document on the database"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents from the database"
	ErrDevDBStringNotObjectID         = "string cannot be converted to mongo ObjectID"
	ErrDevRedisGetNoData              = "failed to get data with key: %s"
	ErrDevRedisSetData                = "failed to set data to redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket: %s"
	ErrDevMinioFailedToPresignObject  = "failed to create presigned URL in bucket: %s"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue: %s"
	ErrDevRabbitMQConsumeMessage      = "failed to consume message from queue: %s"
	ErrDevCannotMarshalJSON           = "failed to marshal value to JSON"
	ErrDevInvalidInput                = "input is invalid"
)
