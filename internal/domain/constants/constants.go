package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys.
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrDeviceID  = "device_id"
	AttrRequestID = "request_id"
)
