package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "ARGY_SVC_"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Minutes east of UTC for the clinic's civil time. +05:30 (IST) unless
// overridden through TIMEZONE_OFFSET_MINUTES.
const (
	DefaultTimezoneOffsetMinutes = 330
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	TimeLayoutHHMM     = "15:04"
)

const (
	RedisSessionKeyPrefix  = "session:"
	RedisSlotLockKeyPrefix = "slot_lock:"
)

const (
	LabReportAllowedFormats   = ".pdf,.jpg,.jpeg,.png"
	LabReportObjectNameFormat = "lab-reports/%s/%s%s"
)
