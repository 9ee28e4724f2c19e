package response

// AuthResponse carries the issued token together with the authenticated
// profile projection.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
