package ai

import (
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

// ErrorKind classifies a provider failure for the provider-switch policy
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindRateLimited
	KindOverloaded
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindOverloaded:
		return "overloaded"
	default:
		return "error"
	}
}

// ProviderError wraps a failed remote model call
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func wrapProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: Classify(err), Err: err}
}

// Classify inspects err for a rate limit or overload signal.
// Structured API errors are checked first, then the error text.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindOther
	}

	var perr *ProviderError
	if errors.As(err, &perr) && perr.Kind != KindOther {
		return perr.Kind
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if k := kindFromStatus(gerr.Code); k != KindOther {
			return k
		}
	}

	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		if k := kindFromStatus(aerr.HTTPCode()); k != KindOther {
			return k
		}
		if st := aerr.GRPCStatus(); st != nil {
			switch st.Code() {
			case codes.ResourceExhausted:
				return KindRateLimited
			case codes.Unavailable:
				return KindOverloaded
			}
		}
	}

	var oerr *openai.APIError
	if errors.As(err, &oerr) {
		if k := kindFromStatus(oerr.HTTPStatusCode); k != KindOther {
			return k
		}
	}

	var rerr *openai.RequestError
	if errors.As(err, &rerr) {
		if k := kindFromStatus(rerr.HTTPStatusCode); k != KindOther {
			return k
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "overloaded"), strings.Contains(msg, "503"):
		return KindOverloaded
	case strings.Contains(msg, "429"):
		return KindRateLimited
	}
	return KindOther
}

func kindFromStatus(code int) ErrorKind {
	switch code {
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusServiceUnavailable:
		return KindOverloaded
	}
	return KindOther
}

// ShouldSwitchProvider reports whether the secondary provider should be tried
func ShouldSwitchProvider(err error) bool {
	k := Classify(err)
	return k == KindRateLimited || k == KindOverloaded
}
