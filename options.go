package equinox

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identAttributes struct{}
type identChildren struct{}
type identEncoding struct{}
type identKeepBlanks struct{}
type identReader struct{}

// ElementOption is an option accepted by NewElement.
type ElementOption interface {
	Option
	elementOption()
}

type elementOption struct{ Option }

func (*elementOption) elementOption() {}

// WithAttributes seeds a new element with the given attributes. Keys
// are applied in sorted order so that construction is deterministic.
func WithAttributes(v map[string]string) ElementOption {
	return &elementOption{option.New(identAttributes{}, v)}
}

// WithChildren seeds a new element with the given children, appended
// in argument order. At least one node must be supplied.
func WithChildren(v ...Node) ElementOption {
	return &elementOption{option.New(identChildren{}, v)}
}

// ReadOption is an option accepted by ReadDocument and NewBuilder.
type ReadOption interface {
	Option
	readOption()
}

type readOption struct{ Option }

func (*readOption) readOption() {}

// WithKeepBlanks controls whether whitespace-only text in the source
// becomes Text nodes. The default is to discard it.
func WithKeepBlanks(v bool) ReadOption {
	return &readOption{option.New(identKeepBlanks{}, v)}
}

// WithEncoding names the character encoding of the source document.
// The default reader otherwise honors the encoding the document
// declares, falling back to UTF-8.
func WithEncoding(v string) ReadOption {
	return &readOption{option.New(identEncoding{}, v)}
}

// WithReader makes ReadDocument consume the supplied DocumentReader
// instead of constructing the default one over the source.
func WithReader(v DocumentReader) ReadOption {
	return &readOption{option.New(identReader{}, v)}
}
