package quoteerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	err := &TransportError{Endpoint: "pricing", Status: 502}
	assert.Contains(t, err.Error(), "pricing")
	assert.Contains(t, err.Error(), "502")

	cause := errors.New("connection refused")
	err = &TransportError{Endpoint: "auth", Err: cause}
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestEngineError(t *testing.T) {
	err := &EngineError{Message: "No products configured"}
	assert.Contains(t, err.Error(), "No products configured")
	assert.Equal(t, "pricing engine reported an error", (&EngineError{}).Error())

	assert.True(t, IsEngineError(err))
	assert.True(t, IsEngineError(fmt.Errorf("price call: %w", err)))
	assert.False(t, IsEngineError(errors.New("other")))
	assert.False(t, IsEngineError(nil))
}

func TestParseError(t *testing.T) {
	err := &ParseError{Reason: "pricing payload missing"}
	assert.Equal(t, "unparsable pricing response: pricing payload missing", err.Error())

	err = &ParseError{Reason: "pricing payload missing", Snippet: "<soap:Body/>"}
	assert.Contains(t, err.Error(), `near "<soap:Body/>"`)
}
