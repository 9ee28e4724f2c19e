package response

// ApiResponse is the generic envelope for all API responses. Successful
// responses carry data/token/message/count as applicable; failures carry only
// the error string.
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccess creates a successful response carrying data
func NewSuccess[T any](data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewSuccessWithToken creates a successful response carrying data and a token
func NewSuccessWithToken[T any](data T, token string) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Data:    data,
		Token:   token,
	}
}

// NewSuccessWithCount creates a successful list response carrying an item count
func NewSuccessWithCount[T any](data T, count int) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Data:    data,
		Count:   &count,
	}
}

// NewMessage creates a successful response carrying only a message
func NewMessage(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: true,
		Message: message,
	}
}

// NewError creates a failure response
func NewError[T any](errMsg string) ApiResponse[T] {
	return ApiResponse[T]{
		Success: false,
		Error:   errMsg,
	}
}
