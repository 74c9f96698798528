package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("reconstructed %d windows", 42)
	if got != "reconstructed 42 windows" {
		t.Errorf("captured %q", got)
	}

	// nil installs a no-op, not a nil func.
	SetLogger(nil)
	Logf("must not panic")
}
