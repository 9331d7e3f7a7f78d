package response

// Envelope is the success wrapper used by the integration endpoints.
type Envelope struct {
	Data any `json:"data"`
}

func Wrap(v any) Envelope {
	return Envelope{Data: v}
}

type MessageData struct {
	Message string `json:"message"`
}
