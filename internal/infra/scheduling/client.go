package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"appointment-finder/internal/domain/appointment"
	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/pkg/config"

	"golang.org/x/time/rate"
)

const maxBodyBytes = 1 << 20

// slot is one entry of the next-available payload. Other fields are ignored.
type slot struct {
	EpochTime json.Number `json:"epoch_time"`
}

// Client queries the scheduling service's next-available endpoint.
// NextAvailable never returns an error: every failure is folded into a Failed result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.SchedulingConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		timeout:    cfg.RequestTimeout,
		logger:     logger,
	}
}

func (c *Client) NextAvailable(ctx context.Context, id location.LocationID) appointment.QueryResult {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// a limiter that cannot grant a token before the deadline counts as a timeout
	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Debug("rate limiter wait aborted", "location_id", id, "error", err)
		return appointment.Failed(http.StatusGatewayTimeout)
	}

	endpoint := c.baseURL + url.PathEscape(id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		infra.LogGatewayFailure(c.logger, infra.KindTransport, "invalid next-available request", err, slog.String("location_id", id.String()))
		return appointment.Failed(http.StatusBadGateway)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		infra.LogGatewayFailure(c.logger, infra.KindTransport, "next-available request failed", err, slog.String("location_id", id.String()))
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return appointment.Failed(http.StatusGatewayTimeout)
		}
		return appointment.Failed(http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return appointment.Failed(resp.StatusCode)
	}

	var slots []slot
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&slots); err != nil {
		if errors.Is(err, io.EOF) {
			return appointment.Empty()
		}
		infra.LogGatewayFailure(c.logger, infra.KindDecode, "undecodable next-available payload", err, slog.String("location_id", id.String()))
		return appointment.Failed(http.StatusBadGateway)
	}

	earliest, ok := earliestSlot(slots)
	if !ok {
		if len(slots) > 0 {
			infra.LogGatewayFailure(c.logger, infra.KindDecode, "next-available slots carry no epoch_time", nil, slog.String("location_id", id.String()))
			return appointment.Failed(http.StatusBadGateway)
		}
		return appointment.Empty()
	}
	return appointment.Scheduled(earliest)
}

// earliestSlot returns the smallest epoch time among slots that carry one.
func earliestSlot(slots []slot) (int64, bool) {
	var (
		earliest int64
		found    bool
	)
	for _, s := range slots {
		t, ok := epochMillis(s.EpochTime)
		if !ok {
			continue
		}
		if !found || t < earliest {
			earliest = t
			found = true
		}
	}
	return earliest, found
}

func epochMillis(n json.Number) (int64, bool) {
	if n == "" {
		return 0, false
	}
	if v, err := n.Int64(); err == nil {
		return v, true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return int64(f), true
}
