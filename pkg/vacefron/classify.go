package vacefron

import (
	"encoding/json"
	"io"
	"net/http"
)

// drainLimit bounds how much of a successful body is read before the
// connection is released back to the pool.
const drainLimit = 64 << 10

type errorBody struct {
	Message *string `json:"message"`
}

// classify maps the response to the request URL on 200, or to an *Error
// carrying the server message otherwise. The response body is always
// closed.
func classify(requestURL string, resp *http.Response) (string, error) {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		return requestURL, nil
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &DecodeError{URL: requestURL, StatusCode: resp.StatusCode, Err: err}
	}

	apiErr := &Error{
		StatusCode: resp.StatusCode,
		URL:        requestURL,
	}
	if body.Message != nil {
		apiErr.Message = *body.Message
		apiErr.HasMessage = true
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		apiErr.Kind = KindBadRequest
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case http.StatusInternalServerError:
		apiErr.Kind = KindInternalServerError
	default:
		apiErr.Kind = KindHTTPError
		apiErr.Header = resp.Header.Clone()
	}
	return "", apiErr
}
