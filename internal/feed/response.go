package feed

// Response is the write acknowledgement echoed to the Gantt client. The
// client keys off Action; TID carries the new row id on inserts.
type Response struct {
	Action string `json:"action"`
	TID    string `json:"tid,omitempty"`
	Msg    string `json:"msg,omitempty"`
}

// OK acknowledges a successful mutation with its operation status.
func OK(status string) Response {
	return Response{Action: status}
}

// Inserted acknowledges an insert and returns the created id.
func Inserted(tid string) Response {
	return Response{Action: "inserted", TID: tid}
}

// Error converts a failure into the client's generic error payload. The
// message stays terse; details belong in the server log.
func Error(msg string) Response {
	return Response{Action: "error", Msg: msg}
}
