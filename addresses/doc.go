// Package addresses provides typed bindings for the Telnyx address endpoints.
//
// Addresses are the postal records Telnyx uses for emergency-services
// routing. This package maps each REST endpoint onto a typed method of the
// Service and defines the request and response models, leaving transport
// concerns (authentication, JSON, error mapping) to the telnyx package.
//
// # Usage
//
// Create a service on top of a telnyx.Client:
//
//	client, err := telnyx.New("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc := addresses.New(client, logger)
//
//	req := addresses.NewCreateAddressRequest("311 W Superior St", "Chicago", "US").
//		WithAdministrativeArea("IL").
//		WithPostalCode("60654").
//		WithFirstName("John").
//		WithLastName("Doe")
//
//	ctx := context.Background()
//	created, err := svc.Create(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(created.Data.ID)
//
// Request types use chained builders for optional fields. Fields left unset
// never appear in the wire payload, so server-side defaults are preserved.
//
// # Validation
//
// Validate answers with a tri-state result: valid, invalid, or unknown. The
// unknown value is a forward-compatibility fallback for statuses the client
// does not recognize; it is never a decode failure. Validity is carried in
// the result field, not the HTTP status.
//
// # Operations
//
//   - List: GET the address collection with pagination metadata
//   - Get: GET a single address by ID
//   - Create: POST a new address, returning the server-assigned record
//   - Delete: DELETE an address, no payload on success
//   - Validate: POST a one-shot validation query
//   - AcceptSuggestions: POST an acknowledgment of the suggested
//     normalization
//   - BatchDelete: concurrent fan-out over Delete with aggregated results
package addresses
