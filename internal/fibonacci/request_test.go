package fibonacci

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/billionfib/internal/bignum"
	apperrors "github.com/agbru/billionfib/internal/errors"
	"github.com/agbru/billionfib/internal/fibonacci/mocks"
)

func mustRequest(t *testing.T, n int64, opts ...RequestOption) *Request {
	t.Helper()
	r, err := NewRequest(n, opts...)
	if err != nil {
		t.Fatalf("NewRequest(%d) failed: %v", n, err)
	}
	return r
}

func TestNewRequestRejectsNegative(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{-1, -1000} {
		r, err := NewRequest(n)
		if r != nil {
			t.Errorf("NewRequest(%d) returned a request", n)
		}
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("NewRequest(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestRequestAccessors(t *testing.T) {
	t.Parallel()
	r := mustRequest(t, 100)

	if r.N() != 100 {
		t.Errorf("N() = %d, want 100", r.N())
	}
	if r.Computed() || r.Elapsed() != 0 {
		t.Error("request should not be computed before first access")
	}
	if got := r.String(); got != "354224848179261915075" {
		t.Errorf("String() = %s", got)
	}
	if !r.Computed() {
		t.Error("Computed() should be true after String()")
	}
	if r.Big().String() != r.String() || r.Value().String() != r.String() {
		t.Error("Big, Value and String disagree")
	}
}

func TestRequestBigIsACopy(t *testing.T) {
	t.Parallel()
	r := mustRequest(t, 50)
	b := r.Big()
	b.SetInt64(0)
	if r.String() != "12586269025" {
		t.Errorf("mutating Big() changed the request: %s", r.String())
	}
}

// TestDecimalRoundTrip verifies the decimal rendering parses back to the
// computed value.
func TestDecimalRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{0, 1, 2, 50, 500} {
		r := mustRequest(t, n)
		parsed, err := bignum.ParseDecimal(r.String())
		if err != nil {
			t.Fatalf("ParseDecimal(F(%d)) failed: %v", n, err)
		}
		if !parsed.Equal(r.Value()) {
			t.Errorf("F(%d) does not round-trip through its decimal form", n)
		}
	}
}

func TestRequestComputesOnce(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	computer := mocks.NewMockComputer(ctrl)
	computer.EXPECT().Compute(gomock.Any(), uint64(10)).Return(bignum.FromUint64(55)).Times(1)

	r := mustRequest(t, 10, WithComputer(computer))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = r.Value().String()
			} else {
				results[i] = r.String()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != "55" {
			t.Errorf("goroutine %d saw %q, want 55", i, got)
		}
	}
	r.Resolve(context.Background())
	r.Big()
}

func TestWriteTo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := mustRequest(t, 20).WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != "6765" || n != 4 {
		t.Errorf("WriteTo wrote %q (%d bytes), want \"6765\" (4 bytes)", buf.String(), n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToError(t *testing.T) {
	t.Parallel()
	_, err := mustRequest(t, 20).WriteTo(failingWriter{})
	var ioErr apperrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("WriteTo error = %v, want IOError", err)
	}
}

func TestWriteFileTruncates(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "Fib-10.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := mustRequest(t, 10).WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "55" {
		t.Errorf("file content = %q, want \"55\"", got)
	}
}

func TestWriteFileError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "Fib-10.txt")
	err := mustRequest(t, 10).WriteFile(path)

	var ioErr apperrors.IOError
	if !errors.As(err, &ioErr) || ioErr.Path != path || ioErr.Op != "create" {
		t.Fatalf("WriteFile error = %v, want create IOError for %s", err, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("WriteFile error should wrap os.ErrNotExist, got %v", err)
	}
}
