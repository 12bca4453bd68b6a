//go:build unit || e2e

package testutil

import (
	"fmt"
	"net/url"
)

// QueryURL encodes params onto path after applying the mutators.
func QueryURL(path string, params map[string]any, muts ...func(map[string]any)) string {
	m := make(map[string]any, len(params))
	for k, v := range params {
		m[k] = v
	}
	for _, f := range muts {
		f(m)
	}
	if len(m) == 0 {
		return path
	}
	q := url.Values{}
	for k, v := range m {
		q.Set(k, fmt.Sprint(v))
	}
	return path + "?" + q.Encode()
}
