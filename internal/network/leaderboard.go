package network

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scrapeLeaderboardTotal estimates the network total from the public
// leaderboard page. It is the secondary source: the page renders the
// same top entries as the ranking feed, so the sampled sum is scaled by
// the same population factor.
func (p *EstimateProvider) scrapeLeaderboardTotal(ctx context.Context) (float64, error) {
	body, err := p.doGet(ctx, p.cfg.LeaderboardURL)
	if err != nil {
		return 0, fmt.Errorf("leaderboard fetch: %w", err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return 0, fmt.Errorf("parse leaderboard page: %w", err)
	}

	sum := 0.0
	rows := 0
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		// Points render in the last cell of each row.
		cell := row.Find("td").Last()
		val, ok := parseLeaderboardNumber(cell.Text())
		if !ok {
			return
		}
		sum += val
		rows++
	})

	if rows == 0 {
		return 0, fmt.Errorf("leaderboard page had no parseable rows")
	}
	return sum * p.cfg.ScalingFactor, nil
}

// parseLeaderboardNumber parses a display-formatted points value like
// "12,345,678" or "12.3M".
func parseLeaderboardNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		mult = 1_000_000
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		mult = 1_000
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "B"):
		mult = 1_000_000_000
		s = strings.TrimSuffix(s, "B")
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return val * mult, true
}
