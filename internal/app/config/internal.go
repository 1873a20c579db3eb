package config

type InternalConfig struct {
	App   App
	JWT   JWT
	Minio AppMinio
}

type App struct {
	Env                  string
	Port                 string
	Version              string
	Address              string
	Timezone             string
	EndpointPrefix       string
	MaxRequests          int
	ShutdownTimeout      int
	RequestBodyLimitInMB int
	// TimezoneOffsetMinutes anchors all civil-time conversion; +330 is IST.
	TimezoneOffsetMinutes     int
	SessionExpiredTimeInHours int
	RabbitMQReminderQueue     string
	ReminderPublishPerSecond  int
	ReminderDrainPerSecond    int
	ReminderDrainBatchSize    int
	// SlotWindowDays controls the rolling window the slot worker maintains.
	SlotWindowDays     int
	SlotWorkerCronSpec string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	LabReportMaxUploadSizeInMB          int64
	PresignedURLObjectExpiryTimeInHours int
}
