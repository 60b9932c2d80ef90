package model

import "time"

// SentinelKey marks a sentinel when fields travel as JSON-like maps:
// {"$sentinel": "serverTimestamp"}.
const SentinelKey = "$sentinel"

// EncodeFields converts fields into plain JSON-compatible maps, replacing
// sentinels with their marker objects and times with RFC 3339 strings.
func EncodeFields(fields Fields) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = encodeValue(v)
	}
	return out
}

func encodeValue(v any) any {
	switch val := v.(type) {
	case Sentinel:
		return map[string]any{SentinelKey: string(val)}
	case Fields:
		return EncodeFields(val)
	case map[string]any:
		return EncodeFields(Fields(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = encodeValue(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// DecodeFields is the inverse of EncodeFields for sentinels. Marker objects
// become Sentinel values; everything else is kept as decoded.
func DecodeFields(raw map[string]any) Fields {
	out := make(Fields, len(raw))
	for k, v := range raw {
		out[k] = decodeValue(v)
	}
	return out
}

func decodeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 1 {
			if s, ok := val[SentinelKey].(string); ok {
				return Sentinel(s)
			}
		}
		return DecodeFields(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = decodeValue(item)
		}
		return out
	default:
		return v
	}
}
