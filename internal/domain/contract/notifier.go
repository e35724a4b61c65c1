package contract

import "context"

type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
	NotifyWarning NotifyKind = "warning"
)

// Notification is delivered fire-and-forget. An empty Recipient broadcasts to
// the configured channel.
type Notification struct {
	Kind      NotifyKind
	Title     string
	Message   string
	Recipient string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
