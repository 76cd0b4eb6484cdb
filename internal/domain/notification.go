package domain

// SavedNameKey is the preference key holding the last submitted username.
const SavedNameKey = "saved_name"

// User-facing notification texts.
const (
	MessageUsernameEmpty = "username must not be empty"
	MessageAPIError      = "API error occurred"
)

// NotificationKind classifies a transient user notification.
type NotificationKind string

const (
	// NotificationValidation reports rejected input that never reached the network.
	NotificationValidation NotificationKind = "validation"
	// NotificationAPIError reports a failed repository fetch.
	NotificationAPIError NotificationKind = "api_error"
)

// String returns the string representation of the notification kind.
func (k NotificationKind) String() string {
	return string(k)
}

// Notification is a short message shown to the user and then dismissed.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// NewValidationNotification builds the notification for an empty username.
func NewValidationNotification() Notification {
	return Notification{Kind: NotificationValidation, Message: MessageUsernameEmpty}
}

// NewAPIErrorNotification builds the generic notification for any fetch failure.
func NewAPIErrorNotification() Notification {
	return Notification{Kind: NotificationAPIError, Message: MessageAPIError}
}
