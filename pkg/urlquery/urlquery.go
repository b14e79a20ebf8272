// Package urlquery provides pure helpers for rewriting URL query strings,
// used for pagination and category filtering.
package urlquery

import (
	"net/url"
)

// Upsert parses the query string, sets or overwrites the given key and
// re-serializes. Serialization is stable (keys are sorted), so applying the
// same upsert twice yields the same string.
func Upsert(query, key, value string) string {
	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}
	values.Set(key, value)
	return values.Encode()
}

// RemoveKeys parses the query string, deletes the given keys if present and
// re-serializes. Absent keys are not an error.
func RemoveKeys(query string, keys ...string) string {
	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}
	for _, key := range keys {
		values.Del(key)
	}
	return values.Encode()
}
