package addresses

import (
	"encoding/json"
	"time"
)

// Address is an address record as returned by the API. Instances are
// constructed by decoding server responses and are never mutated locally.
type Address struct {
	// ID uniquely identifies the address.
	ID int64 `json:"id"`
	// RecordType identifies the type of the resource.
	RecordType string `json:"record_type"`
	// CustomerReference is a customer-provided string for look-ups.
	CustomerReference *string `json:"customer_reference,omitempty"`
	// FirstName is the first name associated with the address. The API
	// expects either a first and last name or a business name.
	FirstName *string `json:"first_name,omitempty"`
	// LastName is the last name associated with the address.
	LastName *string `json:"last_name,omitempty"`
	// BusinessName is the business name associated with the address.
	BusinessName *string `json:"business_name,omitempty"`
	// PhoneNumber is the phone number associated with the address.
	PhoneNumber *string `json:"phone_number,omitempty"`
	// StreetAddress is the primary street address line.
	StreetAddress string `json:"street_address"`
	// ExtendedAddress holds additional street information such as a unit
	// or apartment number.
	ExtendedAddress *string `json:"extended_address,omitempty"`
	// Locality is the city for US addresses.
	Locality string `json:"locality"`
	// AdministrativeArea is the state for US addresses.
	AdministrativeArea *string `json:"administrative_area,omitempty"`
	// Neighborhood is used for some international addresses, not in the US.
	Neighborhood *string `json:"neighborhood,omitempty"`
	// Borough is used for some international addresses, not in the US.
	Borough *string `json:"borough,omitempty"`
	// PostalCode is the postal code of the address.
	PostalCode *string `json:"postal_code,omitempty"`
	// CountryCode is the two-character ISO 3166-1 alpha-2 country code.
	CountryCode string `json:"country_code"`
	// AddressBook indicates the address is part of the regular-use address list.
	AddressBook bool `json:"address_book"`
	// ValidateAddress indicates the address should be validated for
	// emergency use upon creation.
	ValidateAddress bool `json:"validate_address"`
	// CreatedAt is when the resource was created (ISO 8601, UTC).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the resource was last updated (ISO 8601, UTC).
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAddressRequest is the payload for creating a new address. It mirrors
// Address minus the server-assigned fields. Optional fields left unset are
// omitted from the wire payload entirely, never sent as null, so server-side
// defaults are not overwritten.
type CreateAddressRequest struct {
	CustomerReference  *string `json:"customer_reference,omitempty"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	BusinessName       *string `json:"business_name,omitempty"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	StreetAddress      string  `json:"street_address"`
	ExtendedAddress    *string `json:"extended_address,omitempty"`
	Locality           string  `json:"locality"`
	AdministrativeArea *string `json:"administrative_area,omitempty"`
	Neighborhood       *string `json:"neighborhood,omitempty"`
	Borough            *string `json:"borough,omitempty"`
	PostalCode         *string `json:"postal_code,omitempty"`
	CountryCode        string  `json:"country_code"`
	AddressBook        bool    `json:"address_book"`
	ValidateAddress    bool    `json:"validate_address"`
}

// ValidateAddressRequest is the payload for a one-shot emergency-services
// address validation.
type ValidateAddressRequest struct {
	StreetAddress      string  `json:"street_address"`
	ExtendedAddress    *string `json:"extended_address,omitempty"`
	Locality           *string `json:"locality,omitempty"`
	AdministrativeArea *string `json:"administrative_area,omitempty"`
	PostalCode         string  `json:"postal_code"`
	CountryCode        string  `json:"country_code"`
}

// ValidateAddressResult is the outcome of an address validation. Validity is
// encoded in Result, not in the HTTP status: the API answers 200 for both
// valid and invalid addresses.
type ValidateAddressResult struct {
	// RecordType identifies the type of the resource.
	RecordType string `json:"record_type"`
	// Result indicates whether the address is valid.
	Result ValidationStatus `json:"result"`
	// Suggested is the normalized address, when available.
	Suggested SuggestedAddress `json:"suggested"`
	// Errors holds structured validation errors, if any.
	Errors []ValidationError `json:"errors,omitempty"`
}

// SuggestedAddress is the normalized address proposed by the validator.
// Every field is optional.
type SuggestedAddress struct {
	StreetAddress      *string `json:"street_address,omitempty"`
	ExtendedAddress    *string `json:"extended_address,omitempty"`
	Locality           *string `json:"locality,omitempty"`
	AdministrativeArea *string `json:"administrative_area,omitempty"`
	PostalCode         *string `json:"postal_code,omitempty"`
	CountryCode        *string `json:"country_code,omitempty"`
}

// ValidationError is a structured error reported by the validation endpoint.
type ValidationError struct {
	// Code is the error code.
	Code string `json:"code"`
	// Title is a short error summary.
	Title string `json:"title"`
	// Detail is a longer error description.
	Detail *string `json:"detail,omitempty"`
	// Source locates the offending part of the request.
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource locates the origin of a validation error, either a query
// parameter or a JSON pointer (RFC 6901) into the request body.
type ErrorSource struct {
	Parameter *string `json:"parameter,omitempty"`
	Pointer   *string `json:"pointer,omitempty"`
}

// ValidationStatus indicates whether an address is valid or invalid. Values
// the client does not recognize decode to ValidationStatusUnknown so that
// new server-side statuses never break parsing.
type ValidationStatus string

const (
	// ValidationStatusValid indicates the address is valid.
	ValidationStatusValid ValidationStatus = "valid"
	// ValidationStatusInvalid indicates the address is invalid.
	ValidationStatusInvalid ValidationStatus = "invalid"
	// ValidationStatusUnknown is the fallback for unrecognized statuses.
	ValidationStatusUnknown ValidationStatus = "unknown"
)

// UnmarshalJSON decodes a validation status, mapping unrecognized values to
// ValidationStatusUnknown.
func (s *ValidationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch ValidationStatus(raw) {
	case ValidationStatusValid, ValidationStatusInvalid:
		*s = ValidationStatus(raw)
	default:
		*s = ValidationStatusUnknown
	}
	return nil
}

// IsValid reports whether the status is ValidationStatusValid.
func (s ValidationStatus) IsValid() bool {
	return s == ValidationStatusValid
}

// AcceptSuggestionRequest is the payload for accepting a server-proposed
// normalized address as the address of record.
type AcceptSuggestionRequest struct {
	// ID is the UUID of the location.
	ID *string `json:"id,omitempty"`
}

// AcceptSuggestionResult is the outcome of a suggestion acceptance.
type AcceptSuggestionResult struct {
	// Accepted indicates whether the suggestions were accepted.
	Accepted bool `json:"accepted"`
	// ID is the UUID of the location.
	ID *string `json:"id,omitempty"`
}
