package domain

import "net/url"

// Response is a normalized API response body. JSON object responses keep
// their decoded values; URL-encoded responses flatten to string values.
// Both shapes collapse to this one mapping so downstream consumers never
// care which wire format the provider chose.
type Response map[string]any

// ResponseFromValues builds a Response from parsed query-string pairs,
// keeping the first value for each key.
func ResponseFromValues(values url.Values) Response {
	r := make(Response, len(values))
	for key := range values {
		r[key] = values.Get(key)
	}
	return r
}

// String returns the value for key as a string, or "" if the key is absent
// or not a string.
func (r Response) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}
