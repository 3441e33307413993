package connection

// NoPayload is used for messages that only carry a code and maybe an error.
type NoPayload bool

// Message is the envelope of every frame in both directions. Payload
// and Error are exclusive on the server side: a failed request gets an
// error and nothing else.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

// NewSignalErrMessage answers a frame whose code could not be served.
func NewSignalErrMessage(code uint8, message string) Message[NoPayload] {
	msg := NewMessage[NoPayload](code)
	msg.Error = NewRespErr("", message)
	return msg
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

// Fail drops any payload set so far and records err.
func (m *Message[T]) Fail(err error, message string) {
	var zero T
	m.Payload = zero

	var details string
	if err != nil {
		details = err.Error()
	}
	m.Error = NewRespErr(details, message)
}

func (m Message[T]) Failed() bool {
	return m.Error != nil
}
