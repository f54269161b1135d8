package response

// Err is the error body the API returns on non-2xx responses.
type Err struct {
	Message string `json:"message"`
}
