package errors

// Messages carried in the error envelope. Clients match on the status code in
// the "error" field; the message text is kept for compatibility.
const (
	MsgNotFound           = "Not found"
	MsgUnprocessable      = "Unprocessable"
	MsgServiceUnavailable = "Service unavailable"
	MsgInternalError      = "Internal server error"
)
