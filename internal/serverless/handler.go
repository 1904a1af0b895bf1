// Package serverless serves an http.Handler behind API Gateway HTTP API events.
package serverless

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

const requestIDHeader = "X-Request-Id"

type Handler struct {
	adapter *httpadapter.HandlerAdapterV2
}

func NewHandler(h http.Handler) *Handler {
	return &Handler{adapter: httpadapter.NewV2(h)}
}

// Handle is the Lambda entrypoint. The gateway request id becomes the request
// id unless the caller sent one.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if id := event.RequestContext.RequestID; id != "" && !hasHeader(event.Headers, requestIDHeader) {
		headers := make(map[string]string, len(event.Headers)+1)
		for k, v := range event.Headers {
			headers[k] = v
		}
		headers[requestIDHeader] = id
		event.Headers = headers
	}

	return h.adapter.ProxyWithContext(ctx, event)
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if http.CanonicalHeaderKey(k) == name {
			return true
		}
	}
	return false
}
