package table

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Renderers holds named RenderFuncs so columns described in configuration
// files can refer to formatting by name.
type Renderers struct {
	mu    sync.RWMutex
	funcs map[string]RenderFunc
}

var (
	globalRenderers *Renderers
	renderersOnce   sync.Once
)

func NewRenderers() *Renderers {
	r := &Renderers{funcs: make(map[string]RenderFunc)}
	r.Register("upper", func(value any, _ map[string]any) string {
		return strings.ToUpper(stringify(value))
	})
	r.Register("lower", func(value any, _ map[string]any) string {
		return strings.ToLower(stringify(value))
	})
	r.Register("yesno", func(value any, _ map[string]any) string {
		if b, ok := value.(bool); ok && b {
			return "Yes"
		}
		if n, ok := value.(int64); ok && n != 0 {
			return "Yes"
		}
		return "No"
	})
	r.Register("date", func(value any, _ map[string]any) string {
		if t, ok := value.(time.Time); ok {
			return t.Format(time.DateOnly)
		}
		return stringify(value)
	})
	r.Register("datetime", func(value any, _ map[string]any) string {
		if t, ok := value.(time.Time); ok {
			return t.Format(time.DateTime)
		}
		return stringify(value)
	})
	r.Register("short", func(value any, _ map[string]any) string {
		return truncate(stringify(value), 24)
	})
	return r
}

// GetRenderers returns the process wide registry, pre-filled with the built-in renderers.
func GetRenderers() *Renderers {
	renderersOnce.Do(func() {
		globalRenderers = NewRenderers()
	})
	return globalRenderers
}

func (r *Renderers) Register(name string, fn RenderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

func (r *Renderers) Get(name string) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Resolve looks up name, an empty name resolves to nil without error.
func (r *Renderers) Resolve(name string) (RenderFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown renderer '%s'", name)
	}
	return fn, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
