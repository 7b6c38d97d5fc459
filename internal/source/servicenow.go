package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/agendadesk/internal/domain"
)

// ServiceNowConfig locates the agenda-item table.
type ServiceNowConfig struct {
	Instance string // base URL, e.g. https://acme.service-now.com
	Table    string
	Query    string // encoded sysparm_query, optional
	Timeout  time.Duration
}

// Defaults for ServiceNowConfig.
const (
	DefaultServiceNowTable   = "x_agenda_item"
	DefaultServiceNowTimeout = 10 * time.Second
)

// ServiceNowSource fetches agenda items from the ServiceNow Table API.
// It makes exactly one request per Fetch.
type ServiceNowSource struct {
	cfg      ServiceNowConfig
	http     *http.Client
	observer Observer
}

// NewServiceNowSource creates a source for cfg. observer may be nil.
func NewServiceNowSource(cfg ServiceNowConfig, observer Observer) *ServiceNowSource {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Table == "" {
		cfg.Table = DefaultServiceNowTable
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultServiceNowTimeout
	}
	return &ServiceNowSource{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (*ServiceNowSource) Name() string { return NameServiceNow }

// tableResponse is the envelope returned by GET /api/now/table/{table}.
type tableResponse struct {
	Result []Record `json:"result"`
}

func (s *ServiceNowSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()
	endpoint := s.endpoint()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	records, err := s.doRequest(ctx, endpoint)
	if err == nil && len(records) == 0 {
		err = errEmptyResult
	}

	event := FetchEvent{
		Source:    NameServiceNow,
		URL:       endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Records:   len(records),
		Success:   err == nil,
		ErrorCode: errorCode(ctx, err),
	}
	s.observer.OnFetchComplete(ctx, event)

	if err != nil {
		return nil, fmt.Errorf("%w: servicenow: %v", ErrSourceUnavailable, err)
	}
	return &domain.Dataset{Items: NormalizeRecords(records)}, nil
}

var errEmptyResult = errors.New("empty result")

func (s *ServiceNowSource) endpoint() string {
	base := strings.TrimRight(s.cfg.Instance, "/")
	q := url.Values{}
	if s.cfg.Query != "" {
		q.Set("sysparm_query", s.cfg.Query)
	}
	q.Set("sysparm_exclude_reference_link", "true")
	return fmt.Sprintf("%s/api/now/table/%s?%s", base, url.PathEscape(s.cfg.Table), q.Encode())
}

func (s *ServiceNowSource) doRequest(ctx context.Context, endpoint string) ([]Record, error) {
	if s.cfg.Instance == "" {
		return nil, errors.New("no instance configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("servicenow returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var out tableResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out.Result, nil
}

func errorCode(ctx context.Context, err error) string {
	var netErr *net.OpError
	switch {
	case err == nil:
		return ""
	case ctx.Err() != nil:
		return "TIMEOUT"
	case errors.Is(err, errEmptyResult):
		return "EMPTY"
	case errors.As(err, &netErr):
		return "UNAVAILABLE"
	default:
		return "BAD_RESPONSE"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
