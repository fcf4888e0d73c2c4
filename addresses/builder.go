package addresses

// NewCreateAddressRequest creates an address creation request with the
// required fields set. Optional fields are added with the chained With*
// setters:
//
//	req := addresses.NewCreateAddressRequest("311 W Superior St", "Chicago", "US").
//		WithAdministrativeArea("IL").
//		WithPostalCode("60654").
//		WithFirstName("John").
//		WithLastName("Doe")
func NewCreateAddressRequest(streetAddress, locality, countryCode string) *CreateAddressRequest {
	return &CreateAddressRequest{
		StreetAddress: streetAddress,
		Locality:      locality,
		CountryCode:   countryCode,
	}
}

// WithCustomerReference sets the customer reference.
func (r *CreateAddressRequest) WithCustomerReference(v string) *CreateAddressRequest {
	r.CustomerReference = &v
	return r
}

// WithFirstName sets the first name.
func (r *CreateAddressRequest) WithFirstName(v string) *CreateAddressRequest {
	r.FirstName = &v
	return r
}

// WithLastName sets the last name.
func (r *CreateAddressRequest) WithLastName(v string) *CreateAddressRequest {
	r.LastName = &v
	return r
}

// WithBusinessName sets the business name.
func (r *CreateAddressRequest) WithBusinessName(v string) *CreateAddressRequest {
	r.BusinessName = &v
	return r
}

// WithPhoneNumber sets the phone number.
func (r *CreateAddressRequest) WithPhoneNumber(v string) *CreateAddressRequest {
	r.PhoneNumber = &v
	return r
}

// WithExtendedAddress sets the extended address line.
func (r *CreateAddressRequest) WithExtendedAddress(v string) *CreateAddressRequest {
	r.ExtendedAddress = &v
	return r
}

// WithAdministrativeArea sets the administrative area.
func (r *CreateAddressRequest) WithAdministrativeArea(v string) *CreateAddressRequest {
	r.AdministrativeArea = &v
	return r
}

// WithNeighborhood sets the neighborhood.
func (r *CreateAddressRequest) WithNeighborhood(v string) *CreateAddressRequest {
	r.Neighborhood = &v
	return r
}

// WithBorough sets the borough.
func (r *CreateAddressRequest) WithBorough(v string) *CreateAddressRequest {
	r.Borough = &v
	return r
}

// WithPostalCode sets the postal code.
func (r *CreateAddressRequest) WithPostalCode(v string) *CreateAddressRequest {
	r.PostalCode = &v
	return r
}

// WithAddressBook sets the address-book membership flag.
func (r *CreateAddressRequest) WithAddressBook(v bool) *CreateAddressRequest {
	r.AddressBook = v
	return r
}

// WithValidateAddress sets the validate-on-create flag.
func (r *CreateAddressRequest) WithValidateAddress(v bool) *CreateAddressRequest {
	r.ValidateAddress = v
	return r
}

// NewValidateAddressRequest creates a validation request with the required
// fields set.
func NewValidateAddressRequest(streetAddress, postalCode, countryCode string) *ValidateAddressRequest {
	return &ValidateAddressRequest{
		StreetAddress: streetAddress,
		PostalCode:    postalCode,
		CountryCode:   countryCode,
	}
}

// WithExtendedAddress sets the extended address line.
func (r *ValidateAddressRequest) WithExtendedAddress(v string) *ValidateAddressRequest {
	r.ExtendedAddress = &v
	return r
}

// WithLocality sets the locality.
func (r *ValidateAddressRequest) WithLocality(v string) *ValidateAddressRequest {
	r.Locality = &v
	return r
}

// WithAdministrativeArea sets the administrative area.
func (r *ValidateAddressRequest) WithAdministrativeArea(v string) *ValidateAddressRequest {
	r.AdministrativeArea = &v
	return r
}

// NewAcceptSuggestionRequest creates an empty suggestion acceptance request.
func NewAcceptSuggestionRequest() *AcceptSuggestionRequest {
	return &AcceptSuggestionRequest{}
}

// WithID sets the location UUID.
func (r *AcceptSuggestionRequest) WithID(v string) *AcceptSuggestionRequest {
	r.ID = &v
	return r
}
