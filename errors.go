package mdswagger

import (
	"errors"
	"strings"
)

// Sentinel errors for marker resolution.
var (
	ErrUsage             = errors.New("swagger marker missing argument")
	ErrArbitraryLocation = errors.New("arbitrary location not allowed")
	ErrFileNotFound      = errors.New("swagger file not found")
	ErrFileCollision     = errors.New("swagger file destination collision")
	ErrInvalidPath       = errors.New("invalid swagger path")
)

// Inline messages shown to readers in place of a broken marker.
const (
	usageMessage = "Usage: '!!swagger <filename>!!' or '!!swagger-http <url>!!'. " +
		"File must either exist locally and be placed next to the .md that " +
		"contains the swagger statement, or be an http(s) URL."
	arbitraryLocationMessage = "Arbitrary locations are not allowed due to RFI/LFI security risks. " +
		"Please enable the allow_arbitrary_locations configuration option."
	collisionMessage = "Cannot use 2 different swagger files with same filename in same page."
)

const errorTemplatePrefix, errorTemplateSuffix = "!! SWAGGER ERROR: ", " !!"

// MarkerError describes a marker that could not be turned into a viewer.
// Message is the human readable text rendered inline.
type MarkerError struct {
	Err     error
	Message string
	Marker  string
}

func (e *MarkerError) Error() string {
	return e.Message
}

func (e *MarkerError) Unwrap() error {
	return e.Err
}

func newMarkerError(kind error, message string) *MarkerError {
	return &MarkerError{Err: kind, Message: message}
}

// markupEscaper escapes the characters that would otherwise start HTML markup.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// renderError formats an inline error marker.
func renderError(message string) string {
	return markupEscaper.Replace(errorTemplatePrefix + message + errorTemplateSuffix)
}
