package telnyx

// Response is the envelope the API uses for single-item payloads.
type Response[T any] struct {
	Data T `json:"data"`
}

// ListResponse is the envelope the API uses for collection payloads,
// carrying the items plus pagination metadata.
type ListResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// PaginationMeta describes the server-side pagination state of a list
// response. It is passed through as received; the client performs no cursor
// management of its own.
type PaginationMeta struct {
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	PageNumber   int `json:"page_number"`
	PageSize     int `json:"page_size"`
}
