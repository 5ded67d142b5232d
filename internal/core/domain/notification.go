package domain

// NotificationKind classifies the single transient notification banner.
type NotificationKind string

const (
	NoticeSuccess NotificationKind = "success"
	NoticeError   NotificationKind = "error"
	NoticeInfo    NotificationKind = "info"
)

// Notification is the one live transient message. A new notification replaces
// any prior value; dismissal clears it.
type Notification struct {
	Text string
	Kind NotificationKind
}

// Empty reports whether there is no live notification.
func (n Notification) Empty() bool {
	return n.Text == ""
}
