package assistant

import "encoding/json"

// ErrorText normalizes any recovered or returned failure value into a
// plain message safe to send to the client.
func ErrorText(v any) string {
	switch e := v.(type) {
	case nil:
		return "unknown error"
	case error:
		return e.Error()
	case string:
		return e
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "unknown error"
		}
		return string(data)
	}
}
