package apperrors

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"
)

type mockColorProvider struct{}

func (mockColorProvider) Yellow() string { return "[YELLOW]" }
func (mockColorProvider) Red() string    { return "[RED]" }
func (mockColorProvider) Reset() string  { return "[RESET]" }

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		duration     time.Duration
		colors       ColorProvider
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "No Error",
			expectedCode: ExitSuccess,
		},
		{
			name:         "Timeout Error",
			err:          context.DeadlineExceeded,
			duration:     time.Second,
			colors:       mockColorProvider{},
			expectedCode: ExitErrorTimeout,
			expectedMsg:  "Status: Failure (Timeout). The execution limit was reached after [YELLOW]1s[RESET].",
		},
		{
			name:         "Phase Timeout",
			err:          TimeoutError{Operation: "write", Limit: time.Second},
			expectedCode: ExitErrorTimeout,
			expectedMsg:  "The execution limit was reached.",
		},
		{
			name:         "Canceled Error",
			err:          context.Canceled,
			duration:     500 * time.Millisecond,
			colors:       mockColorProvider{},
			expectedCode: ExitErrorCanceled,
			expectedMsg:  "[YELLOW]Status: Canceled after [YELLOW]500ms[RESET].[RESET]",
		},
		{
			name:         "Config Error",
			err:          NewConfigError("unknown base %q", "fft"),
			expectedCode: ExitErrorConfig,
			expectedMsg:  `Configuration error: unknown base "fft"`,
		},
		{
			name:         "Validation Error",
			err:          ValidationError{Field: "n", Message: "must be non-negative"},
			colors:       mockColorProvider{},
			expectedCode: ExitErrorConfig,
			expectedMsg:  "[RED]Configuration error:[RESET]",
		},
		{
			name:         "Mismatch Error",
			err:          MismatchError{N: 7, Bases: []string{"native", "schoolbook"}},
			expectedCode: ExitErrorMismatch,
			expectedMsg:  "result mismatch for F(7)",
		},
		{
			name:         "IO Error",
			err:          WrapError(IOError{Op: "create", Path: "out.txt", Cause: fs.ErrPermission}, "writing result"),
			expectedCode: ExitErrorIO,
			expectedMsg:  "Could not write the result: writing result: create out.txt: permission denied",
		},
		{
			name:         "Generic Error",
			err:          fmt.Errorf("random error"),
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "Status: Failure. An unexpected error occurred: random error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := new(bytes.Buffer)
			code := HandleError(tt.err, tt.duration, out, tt.colors)

			if code != tt.expectedCode {
				t.Errorf("HandleError() code = %v, want %v", code, tt.expectedCode)
			}
			if tt.expectedMsg == "" && out.Len() != 0 {
				t.Errorf("HandleError() printed %q, want nothing", out.String())
			}
			if tt.expectedMsg != "" && !strings.Contains(out.String(), tt.expectedMsg) {
				t.Errorf("HandleError() output = %q, want %q", out.String(), tt.expectedMsg)
			}
		})
	}
}
