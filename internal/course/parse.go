package course

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/aula/internal/fence"
)

// DecodeError reports course JSON that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode course: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrEmptyCourse is returned for a payload that decodes to nothing.
var ErrEmptyCourse = errors.New("empty course payload")

// Parse decodes a course from raw generator output or a saved file.
func Parse(raw []byte) (*Course, error) {
	body := fence.Strip(string(raw))
	if body == "" || body == "null" {
		return nil, &DecodeError{Err: ErrEmptyCourse}
	}
	var c Course
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &c, nil
}
