package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind identifies what triggered a notification.
type Kind string

const (
	KindItemAdded   Kind = "item_added"
	KindItemRemoved Kind = "item_removed"
	KindCartCleared Kind = "cart_cleared"
)

// Notification is a transient, user-facing confirmation.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id,omitempty"`
	At        time.Time `json:"at"`
}

// New stamps a notification with a fresh id and the current time.
func New(kind Kind, message, productID string) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		ProductID: productID,
		At:        time.Now().UTC(),
	}
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) error { return nil }

// Multi fans a notification out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n Notification) error {
	l.logger.Info("notification",
		zap.Stringer("id", n.ID),
		zap.String("kind", string(n.Kind)),
		zap.String("message", n.Message),
		zap.String("product_id", n.ProductID),
	)
	return nil
}

// Toaster shows a short-lived message on the page.
type Toaster interface {
	Toast(id, message string)
}

// ToastNotifier renders notifications as page toasts.
type ToastNotifier struct {
	toaster Toaster
}

func NewToastNotifier(t Toaster) *ToastNotifier {
	return &ToastNotifier{toaster: t}
}

func (t *ToastNotifier) Notify(_ context.Context, n Notification) error {
	t.toaster.Toast(n.ID.String(), n.Message)
	return nil
}
