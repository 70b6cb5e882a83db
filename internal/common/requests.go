package common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderClient      = "X-Client"
	MimeJSON          = "application/json"
)

func MakeRequestFromBuilder(restBuilder *resty.Request, method string, finalUrl string) (*resty.Response, error) {

	switch strings.ToUpper(method) {
	case http.MethodGet:
		return restBuilder.Get(finalUrl)
	case http.MethodPost:
		return restBuilder.Post(finalUrl)
	case http.MethodPut:
		return restBuilder.Put(finalUrl)
	case http.MethodDelete:
		return restBuilder.Delete(finalUrl)
	case http.MethodPatch:
		return restBuilder.Patch(finalUrl)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s. Ensure you're using the http const", method)
	}

}

// ConfigureJSONRequest sets the JSON content negotiation headers and the
// body, if any. The content type is set even without a body.
func ConfigureJSONRequest(restBuilder *resty.Request, body any) {
	restBuilder.
		SetHeader(HeaderContentType, MimeJSON).
		SetHeader(HeaderAccept, MimeJSON)

	if body != nil {
		restBuilder.SetBody(body)
	}
}
