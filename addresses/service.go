package addresses

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/telnyx-go/telnyx"
)

// API paths. The singular create path and the leading-dot item path are the
// paths the remote binding actually serves; they are preserved verbatim even
// though they are inconsistent with the plural collection path.
const (
	listPath              = "/addresses"
	createPath            = "/address"
	itemPathFormat        = "/.address/%d"
	validatePath          = "/addresses/actions/validate"
	acceptSuggestionsPath = "/addresses/%d/actions/accept_suggestions"
)

// Service binds the address endpoints of the Telnyx API to typed
// request/response pairs. Each call is a single round trip with no retry and
// no caching; the Service is safe for concurrent use.
type Service struct {
	client *telnyx.Client
	logger zerolog.Logger
}

// New creates a new address service on top of an existing client.
func New(client *telnyx.Client, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List retrieves all addresses along with pagination metadata.
func (s *Service) List(ctx context.Context) (*telnyx.ListResponse[Address], error) {
	resp, err := telnyx.Get[telnyx.ListResponse[Address]](ctx, s.client, listPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	s.logger.Debug().
		Int("count", len(resp.Data)).
		Int("total_results", resp.Meta.TotalResults).
		Msg("Retrieved addresses")

	return resp, nil
}

// Get retrieves a single address by ID. A missing or unauthorized resource
// surfaces as a *telnyx.APIError carrying the corresponding status code.
func (s *Service) Get(ctx context.Context, id int64) (*telnyx.Response[Address], error) {
	resp, err := telnyx.Get[telnyx.Response[Address]](ctx, s.client, fmt.Sprintf(itemPathFormat, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get address %d: %w", id, err)
	}
	return resp, nil
}

// Create creates a new address and returns the created record including the
// server-assigned ID and timestamps.
func (s *Service) Create(ctx context.Context, req *CreateAddressRequest) (*telnyx.Response[Address], error) {
	resp, err := telnyx.Post[telnyx.Response[Address]](ctx, s.client, createPath, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	s.logger.Debug().
		Int64("id", resp.Data.ID).
		Msg("Created address")

	return resp, nil
}

// Delete deletes an address by ID. A successful delete returns no payload.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := telnyx.Delete(ctx, s.client, fmt.Sprintf(itemPathFormat, id)); err != nil {
		return fmt.Errorf("failed to delete address %d: %w", id, err)
	}

	s.logger.Debug().
		Int64("id", id).
		Msg("Deleted address")

	return nil
}

// Validate checks an address for emergency-services use. The API answers 200
// for both valid and invalid addresses, encoding validity in the result
// field; only malformed requests (such as an unsupported country) surface as
// error statuses.
func (s *Service) Validate(ctx context.Context, req *ValidateAddressRequest) (*telnyx.Response[ValidateAddressResult], error) {
	resp, err := telnyx.Post[telnyx.Response[ValidateAddressResult]](ctx, s.client, validatePath, req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate address: %w", err)
	}

	s.logger.Debug().
		Str("result", string(resp.Data.Result)).
		Int("errors", len(resp.Data.Errors)).
		Msg("Validated address")

	return resp, nil
}

// AcceptSuggestions accepts the server-proposed normalized address for the
// given address ID.
func (s *Service) AcceptSuggestions(ctx context.Context, id int64, req *AcceptSuggestionRequest) (*telnyx.Response[AcceptSuggestionResult], error) {
	resp, err := telnyx.Post[telnyx.Response[AcceptSuggestionResult]](ctx, s.client, fmt.Sprintf(acceptSuggestionsPath, id), req)
	if err != nil {
		return nil, fmt.Errorf("failed to accept suggestions for address %d: %w", id, err)
	}
	return resp, nil
}
