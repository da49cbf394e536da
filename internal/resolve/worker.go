package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/config"
)

// WorkerResolver is the delegated-worker strategy: extraction runs in a
// separate remote process and this side only forwards the source URL
// and passes the worker's already-normalized result through. Its sole
// failure mode is BackendUnavailable.
type WorkerResolver struct {
	endpoint string
	client   *http.Client
}

func NewWorkerResolver(cfg *config.Config) *WorkerResolver {
	return &WorkerResolver{
		endpoint: cfg.WorkerURL,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (w *WorkerResolver) Resolve(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint, nil)
	if err != nil {
		return nil, &Error{Kind: BackendUnavailable, Message: WorkerMessage, Detail: err.Error()}
	}

	query := req.URL.Query()
	query.Set("url", url)
	req.URL.RawQuery = query.Encode()

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: BackendUnavailable, Message: WorkerMessage, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: BackendUnavailable, Message: WorkerMessage, Detail: fmt.Sprintf("worker returned status %d", resp.StatusCode)}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &Error{Kind: BackendUnavailable, Message: WorkerMessage, Detail: "malformed worker response: " + err.Error()}
	}

	return &result, nil
}
