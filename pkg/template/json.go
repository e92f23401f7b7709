package template

import (
	"encoding/json"
	"fmt"

	"github.com/quill-dev/quill/pkg/rdom"
)

// DeserializationError reports a payload that could not be decoded
// into the template's input type.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("template: deserializing payload: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// JSON adapts a typed template function into an EntryPoint that
// decodes its payload as JSON:
//
//	template.MustRegister("home", template.JSON(func(d HomeData) *rdom.Node {
//	    return templates.Home(d)
//	}))
func JSON[T any](fn func(data T) *rdom.Node) EntryPoint {
	return func(payload []byte) (*rdom.Node, error) {
		var data T
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, &DeserializationError{Err: err}
		}
		return fn(data), nil
	}
}
