package contract

import "context"

// Transport is the chat session messages are delivered through.
// SendMessage may be called concurrently.
type Transport interface {
	// Initialize establishes the session. A rejected credential is reported
	// as an error wrapping domain.ErrAuthFailure.
	Initialize(ctx context.Context) error

	// SendMessage delivers text to the recipient chat
	SendMessage(ctx context.Context, recipient, text string) error

	// Destroy tears the session down
	Destroy() error
}

// Pairer is implemented by transports that pair through a challenge
// (for example a QR code) before becoming ready.
type Pairer interface {
	OnPairing(fn func(data string))
}

// QuoteProvider returns a motivational quote. It never fails; a fallback
// quote is returned instead.
type QuoteProvider interface {
	FetchQuote(ctx context.Context) string
}
