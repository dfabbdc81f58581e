package dto

// FieldError is a single field-level validation failure.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

// UpdateAck acknowledges an update: how many documents matched the id and
// how many were written.
type UpdateAck struct {
	Matched  int64 `json:"n"`
	Modified int64 `json:"nModified"`
	OK       int   `json:"ok"`
}

func bodyError(param, msg string) FieldError {
	return FieldError{Msg: msg, Param: param, Location: "body"}
}
