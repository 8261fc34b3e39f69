package store

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DataHandler receives the full value at a subscribed path after every change.
	DataHandler func(Snapshot)
	// ErrorHandler receives transport and permission errors of a subscription.
	ErrorHandler func(error)

	// Client subscribes to values of a realtime document store.
	Client interface {
		Subscribe(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) (Subscription, error)
	}
	// Subscription is a live listener. Close stops it and returns once no
	// handler can run anymore. It must not be called from inside a handler.
	Subscription interface {
		Close()
	}
	// Metrics records metrics for store subscriptions.
	Metrics interface {
		ObserveSnapshot(path string, exists bool)
		ObserveError(path string)
		ObserveSubscribed(delta int)
	}
)
