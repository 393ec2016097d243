package service

import "context"

// ToastSeverity classifies a toast for the presentation layer.
type ToastSeverity string

const (
	// SeverityInfo is the default toast severity.
	SeverityInfo ToastSeverity = "info"
	// SeveritySuccess marks a completed user action.
	SeveritySuccess ToastSeverity = "success"
	// SeverityError marks a failed user action.
	SeverityError ToastSeverity = "error"
)

// Toast is one fire-and-forget notification event for the UI surface.
type Toast struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Severity ToastSeverity `json:"severity"`
}

// ToastNotifier delivers toasts to whatever surface is configured. Callers
// never await acknowledgment; implementations log failures and move on.
type ToastNotifier interface {
	// Notify emits one toast.
	Notify(ctx context.Context, toast Toast)

	// Close releases any resources held by the notifier.
	Close() error
}
