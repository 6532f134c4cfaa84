package logging

import (
	"strconv"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Series adds the name of the series a message is about.
func Series(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("series", name)
	}
}

// Kind adds the kind of series (line, bar, pie).
func Kind(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("kind", kind)
	}
}

// Generation adds the animation generation counter.
func Generation(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("generation", n)
	}
}

// Token adds the animation token.
func Token(token string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("token", token)
	}
}

// Progress adds an animation progress, formatted with 4 decimals.
func Progress(t float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("progress", strconv.FormatFloat(t, 'f', 4, 64))
	}
}

// Count adds a number of items.
func Count(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("count", n)
	}
}

func FromState(s string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("from_state", s)
	}
}

func ToState(s string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("to_state", s)
	}
}

// Path adds a file path.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
