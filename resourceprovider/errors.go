package resourceprovider

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPoolClosed is returned by AddSource after the provider has been
// closed, and by Get (or by Wait on a view from AsyncGet) when a load
// would need to be submitted to a worker pool that has already been
// closed.
var ErrPoolClosed = errors.New("resourceprovider: worker pool is closed")

// UnknownSourceError reports that no source is registered under the
// given id.
type UnknownSourceError struct {
	SourceID string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("resourceprovider: unknown source %q", e.SourceID)
}

// IsUnknownSource reports whether err is (or wraps) an *UnknownSourceError.
func IsUnknownSource(err error) bool {
	var e *UnknownSourceError
	return errors.As(err, &e)
}

// DuplicateSourceError reports that AddSource was called with an id that
// is already registered.
type DuplicateSourceError struct {
	SourceID string
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("resourceprovider: source %q is already registered", e.SourceID)
}

// IsDuplicateSource reports whether err is (or wraps) a *DuplicateSourceError.
func IsDuplicateSource(err error) bool {
	var e *DuplicateSourceError
	return errors.As(err, &e)
}

// WrongTypeError reports that a source was accessed with a resource type
// that does not match the type it was registered with.
type WrongTypeError struct {
	SourceID   string
	Want, Got  reflect.Type
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("resourceprovider: source %q: requested type %s does not match registered type %s", e.SourceID, e.Want, e.Got)
}

// IsWrongType reports whether err is (or wraps) a *WrongTypeError.
func IsWrongType(err error) bool {
	var e *WrongTypeError
	return errors.As(err, &e)
}

// InvalidResourceError wraps a failure raised by a source's Load method.
// It surfaces through a completion handle rather than being raised
// synchronously, except when Get observes it after waiting on the
// handle.
type InvalidResourceError struct {
	SourceID, ResourceID string
	Err                  error
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("resourceprovider: loading %q from source %q failed: %v", e.ResourceID, e.SourceID, e.Err)
}

func (e *InvalidResourceError) Unwrap() error {
	return e.Err
}

// IsInvalidResource reports whether err is (or wraps) an *InvalidResourceError.
func IsInvalidResource(err error) bool {
	var e *InvalidResourceError
	return errors.As(err, &e)
}
