// Package telnyx provides the core HTTP client for the Telnyx v2 REST API.
//
// The package handles the concerns shared by every API call: bearer-token
// authentication, JSON serialization, envelope decoding, and mapping HTTP
// outcomes onto a small error taxonomy. Resource-specific endpoint bindings
// live in sibling packages (see the addresses package) and delegate to the
// typed helpers defined here.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := telnyx.New(
//		"your-api-key",
//		telnyx.WithTimeout(30*time.Second),
//		telnyx.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The client is immutable after construction and safe to share across
// goroutines; concurrent calls share the underlying connection pool.
//
// # Error Handling
//
// Every failure surfaces as a typed error:
//
//   - *APIError: the server returned a non-success status; carries the
//     status code and raw body text
//   - *ParseError: the server returned a success status but the body could
//     not be decoded into the expected shape
//   - *TransportError: the request failed below the HTTP layer (connection
//     failure, timeout)
//   - ErrMissingAPIKey: the client was constructed without a credential
//
// API errors include helper methods for classification:
//
//	if apiErr, ok := telnyx.AsAPIError(err); ok {
//		if apiErr.IsNotFound() {
//			// Handle missing resource
//		}
//	}
//
// There is no built-in retry: transient failures are reported to the caller,
// who owns any retry policy.
package telnyx
