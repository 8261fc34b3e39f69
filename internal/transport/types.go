package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StreamMetrics records metrics for websocket viewers.
	StreamMetrics interface {
		ObserveClient(delta int)
		ObserveWrite(err error)
	}
)
