package searchsort

import (
	"net/url"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

// Query is an ordered set of query string parameters. Unlike url.Values it
// keeps the order parameters appeared in, so links built from it keep the
// layout of the incoming request.
type Query struct {
	params []queryParam
}

// ParseQuery parses a raw query string, a leading "?" is ignored.
func ParseQuery(rawQuery string) *Query {
	q := &Query{}
	for _, part := range strings.Split(strings.TrimPrefix(rawQuery, "?"), "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		q.params = append(q.params, queryParam{
			key:   unescape(key),
			value: unescape(value),
		})
	}
	return q
}

func QueryFromURL(u *url.URL) *Query {
	if u == nil {
		return &Query{}
	}
	return ParseQuery(u.RawQuery)
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func (q *Query) Clone() *Query {
	params := make([]queryParam, len(q.params))
	copy(params, q.params)
	return &Query{params: params}
}

// Get returns the first value for key.
func (q *Query) Get(key string) (string, bool) {
	for _, p := range q.params {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Set replaces the first occurrence of key in place and drops the rest, or
// appends key when it is absent.
func (q *Query) Set(key, value string) {
	found := false
	kept := q.params[:0]
	for _, p := range q.params {
		if p.key != key {
			kept = append(kept, p)
			continue
		}
		if !found {
			found = true
			kept = append(kept, queryParam{key: key, value: value})
		}
	}
	q.params = kept
	if !found {
		q.params = append(q.params, queryParam{key: key, value: value})
	}
}

func (q *Query) Del(key string) {
	kept := q.params[:0]
	for _, p := range q.params {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	q.params = kept
}

func (q *Query) Len() int {
	return len(q.params)
}

func (q *Query) Encode() string {
	var sb strings.Builder
	for idx, p := range q.params {
		if idx > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// String renders the query as a relative link, e.g. "?page=2&sort=name".
func (q *Query) String() string {
	return "?" + q.Encode()
}
