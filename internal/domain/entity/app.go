package entity

// AppName is an application a device can be licensed for.
type AppName string

const (
	AppWABomb     AppName = "WA BOMB"
	AppEmailStorm AppName = "Email Storm"
	AppCubiView   AppName = "Cubi-View"
)

// SupportedApps lists every application a device can be registered for.
func SupportedApps() []AppName {
	return []AppName{AppWABomb, AppEmailStorm, AppCubiView}
}

// IsValid checks if the AppName is a supported application.
func (a AppName) IsValid() bool {
	switch a {
	case AppWABomb, AppEmailStorm, AppCubiView:
		return true
	default:
		return false
	}
}

// String returns the string representation of the AppName.
func (a AppName) String() string {
	return string(a)
}
