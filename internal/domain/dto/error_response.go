package dto

// ErrorResponse is the body returned on every failed request.
//
// Example:
//
//	{"detail": "No data found for symbol ZZZZINVALID"}
type ErrorResponse struct {
	Detail string `json:"detail" example:"No data found for symbol ZZZZINVALID"`
}

// Error implements the error interface so an ErrorResponse can travel through gin's c.Errors.
func (e ErrorResponse) Error() string {
	return e.Detail
}

// NewErrorResponse builds an ErrorResponse. When err is non-nil its text is
// appended to msg.
func NewErrorResponse(msg string, err error) ErrorResponse {
	if err != nil {
		if msg == "" {
			return ErrorResponse{Detail: err.Error()}
		}
		return ErrorResponse{Detail: msg + ": " + err.Error()}
	}
	return ErrorResponse{Detail: msg}
}
