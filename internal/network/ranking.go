// Package network estimates the current network-wide point total for the
// StandX campaign. The primary source is the campaign ranking feed; when
// it fails the provider tries the public leaderboard page, and finally a
// configured constant. No failure ever surfaces as an error — worst case
// the caller sees the fallback value flagged as such.
package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pointsfarm/standx-estimator/internal/config"
	"github.com/pointsfarm/standx-estimator/internal/infra"
	"github.com/pointsfarm/standx-estimator/pkg/models"
)

// pointsUnit normalizes the feed's micro-point values to whole points.
const pointsUnit = 1_000_000

// rankingHeaders are sent on every feed request; the endpoint rejects
// requests without browser-like headers.
var rankingHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Origin":     "https://standx.com",
	"Referer":    "https://standx.com/",
	"Accept":     "application/json",
}

const estimateCacheKey = "network:estimate"

// EstimateProvider fetches and caches the network point estimate.
type EstimateProvider struct {
	cfg     config.NetworkConfig
	client  *http.Client
	cache   *infra.Cache
	limiter *infra.RateLimiter
	now     func() time.Time
}

// NewEstimateProvider creates a provider using the real clock.
func NewEstimateProvider(cfg config.NetworkConfig) *EstimateProvider {
	return NewEstimateProviderWithClock(cfg, time.Now)
}

// NewEstimateProviderWithClock creates a provider with an injectable
// clock so cache expiry is testable.
func NewEstimateProviderWithClock(cfg config.NetworkConfig, now func() time.Time) *EstimateProvider {
	return &EstimateProvider{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout()},
		cache:   infra.NewCacheWithClock(cfg.CacheTTL(), now),
		limiter: infra.NewRateLimiter(5, time.Second),
		now:     now,
	}
}

// Estimate returns the current network point estimate. The second return
// reports whether the value came from the cache; a fresh fetch (cached ==
// false) is what the API layer broadcasts to WebSocket clients.
func (p *EstimateProvider) Estimate(ctx context.Context) (models.NetworkEstimate, bool) {
	if cached, ok := p.cache.Get(estimateCacheKey); ok {
		return cached.(models.NetworkEstimate), true
	}
	return p.Refresh(ctx), false
}

// Refresh bypasses the cache and re-fetches the estimate, walking the
// source chain: ranking feed, leaderboard page, constant fallback.
func (p *EstimateProvider) Refresh(ctx context.Context) models.NetworkEstimate {
	est := models.NetworkEstimate{SampledAt: p.now()}

	total, err := p.fetchRankingTotal(ctx)
	if err == nil {
		est.TotalPoints = total
		est.Source = models.SourceRanking
		p.cache.Set(estimateCacheKey, est)
		return est
	}

	if p.cfg.LeaderboardURL != "" {
		if total, lbErr := p.scrapeLeaderboardTotal(ctx); lbErr == nil {
			est.TotalPoints = total
			est.Source = models.SourceLeaderboard
			p.cache.Set(estimateCacheKey, est)
			return est
		}
	}

	est.TotalPoints = p.cfg.FallbackTotal
	est.Source = models.SourceFallback
	est.Fallback = true
	p.cache.Set(estimateCacheKey, est)
	return est
}

// --- Ranking feed ---

type rankingResponse struct {
	Data []rankingEntry `json:"data"`
}

type rankingEntry struct {
	Points json.Number `json:"points"`
}

// fetchRankingTotal sums the normalized points of the top sample_size
// entries (paged by page_limit, pages fetched concurrently) and scales
// the sum by the configured population factor.
func (p *EstimateProvider) fetchRankingTotal(ctx context.Context) (float64, error) {
	limit := p.cfg.PageLimit
	if limit <= 0 {
		limit = p.cfg.SampleSize
	}
	sample := p.cfg.SampleSize
	if sample <= 0 {
		return 0, fmt.Errorf("ranking: sample size not configured")
	}

	var offsets []int
	for off := 0; off < sample; off += limit {
		offsets = append(offsets, off)
	}

	sums := make([]float64, len(offsets))
	g, gctx := errgroup.WithContext(ctx)
	for i, off := range offsets {
		i, off := i, off
		g.Go(func() error {
			pageLimit := limit
			if off+pageLimit > sample {
				pageLimit = sample - off
			}
			sum, err := p.fetchRankingPage(gctx, pageLimit, off)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range sums {
		total += s
	}
	return total * p.cfg.ScalingFactor, nil
}

// fetchRankingPage fetches one page of the ranking feed and returns the
// normalized points sum of its entries.
func (p *EstimateProvider) fetchRankingPage(ctx context.Context, limit, offset int) (float64, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s?limit=%d&offset=%d", p.cfg.APIURL, limit, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	for k, v := range rankingHeaders {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ranking fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("ranking HTTP %d: %s", resp.StatusCode, string(b))
	}

	var body rankingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("parse ranking response: %w", err)
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("ranking response has no data")
	}

	sum := 0.0
	for _, entry := range body.Data {
		pts, _ := entry.Points.Float64()
		sum += pts / pointsUnit
	}
	return sum, nil
}

// --- shared helpers ---

// doGet issues a GET with the standard headers and returns the body
// reader. Caller closes it.
func (p *EstimateProvider) doGet(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range rankingHeaders {
		req.Header.Set(k, v)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}

// InvalidateCache drops the cached estimate; the next Estimate call
// re-fetches.
func (p *EstimateProvider) InvalidateCache() {
	p.cache.Invalidate(estimateCacheKey)
}
