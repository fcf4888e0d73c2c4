package addresses

import (
	"context"

	"github.com/s0up4200/telnyx-go/telnyx"
)

// API defines the interface for address operations. Service is the canonical
// implementation; the interface exists so consumers can substitute mocks in
// tests.
type API interface {
	// List retrieves all addresses with pagination metadata.
	List(ctx context.Context) (*telnyx.ListResponse[Address], error)

	// Get retrieves a single address by ID.
	Get(ctx context.Context, id int64) (*telnyx.Response[Address], error)

	// Create creates a new address.
	Create(ctx context.Context, req *CreateAddressRequest) (*telnyx.Response[Address], error)

	// Delete deletes an address by ID.
	Delete(ctx context.Context, id int64) error

	// Validate checks an address for emergency-services use.
	Validate(ctx context.Context, req *ValidateAddressRequest) (*telnyx.Response[ValidateAddressResult], error)

	// AcceptSuggestions accepts the server-proposed normalized address.
	AcceptSuggestions(ctx context.Context, id int64, req *AcceptSuggestionRequest) (*telnyx.Response[AcceptSuggestionResult], error)
}

var _ API = (*Service)(nil)
