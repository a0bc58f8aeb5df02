package response

import "strings"

const (
	// Separator divides sentinel and payload
	Separator = "::"
	escape    = `\`
)

// Encode renders response into the wire format. Text starting with a sentinel
// token is escaped so that callers never mistake it for a signal.
func Encode(r *Response) string {
	if r == nil {
		return ""
	}
	if r.IsSignal() {
		sentinel := r.Signal.Kind.Sentinel()
		if r.Signal.Payload == "" {
			return sentinel
		}
		return sentinel + Separator + r.Signal.Payload
	}
	if hasSentinelPrefix(strings.TrimLeft(r.Text, escape)) {
		return escape + r.Text
	}
	return r.Text
}

// Decode parses wire value back into response; non signal values decode as text.
func Decode(value string) *Response {
	if strings.HasPrefix(value, escape) && hasSentinelPrefix(strings.TrimLeft(value, escape)) {
		return Text(value[len(escape):])
	}
	token, payload := value, ""
	if index := strings.Index(value, Separator); index != -1 {
		token, payload = value[:index], value[index+len(Separator):]
	}
	if kind, ok := KindOf(token); ok {
		return Emit(kind, payload)
	}
	return Text(value)
}

// IsSignal returns true if wire value carries a signal
func IsSignal(value string) bool {
	return Decode(value).IsSignal()
}

func hasSentinelPrefix(text string) bool {
	if !strings.HasPrefix(text, "__") {
		return false
	}
	for _, sentinel := range sentinels {
		if strings.HasPrefix(text, sentinel) {
			return true
		}
	}
	return false
}
