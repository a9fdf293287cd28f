package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError folds an HTTP status into the adapter's error classes.
//
// Classification follows the retry policy: timeouts, throttling, and server
// errors are worth retrying; everything else in the 4xx range means the
// payload itself was rejected and retrying cannot help. Authentication
// failures get their own class so the processor can halt the drain instead
// of dead-lettering records.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", ErrUnauthorized, code, body)
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrPermanent, code, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	}
}
