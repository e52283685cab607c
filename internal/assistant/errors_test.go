package assistant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorText(t *testing.T) {
	assert.Equal(t, "unknown error", ErrorText(nil))
	assert.Equal(t, "provider timeout", ErrorText(errors.New("provider timeout")))
	assert.Equal(t, "plain message", ErrorText("plain message"))
	assert.Equal(t, `{"code":429}`, ErrorText(map[string]int{"code": 429}))
}
