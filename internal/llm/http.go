package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends body as JSON to url and decodes the reply into out.
// A non-2xx status is an error even when the body decodes; apiErr is
// consulted first so provider error messages are surfaced verbatim.
func postJSON(ctx context.Context, client *http.Client, name, url string, headers map[string]string, body any, out any, apiErr func() error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", name, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", name, err)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s returned status %d: %s", name, httpResp.StatusCode, string(respBody))
		}
		return fmt.Errorf("failed to unmarshal %s response: %w", name, err)
	}

	if apiErr != nil {
		if err := apiErr(); err != nil {
			return err
		}
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", name, httpResp.StatusCode, string(respBody))
	}
	return nil
}
