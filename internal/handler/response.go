package handler

// Response is the success envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Meta carries pagination metadata alongside list data.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ListResponse is the success envelope for paginated lists.
type ListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
	Meta    Meta   `json:"meta"`
}

// OK builds a success envelope with data.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}
