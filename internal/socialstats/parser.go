// Package socialstats fetches public social profile pages and extracts the
// follower count shown on them. It powers the periodic refresh that keeps a
// creator's derived followers_count in sync with their linked accounts.
package socialstats

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

type Fetcher struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewFetcher(timeoutMS, maxRetries int, log *zap.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

// FetchFollowers loads the page behind a social link and returns the follower
// count it advertises, or 0 when the page exposes none.
func (f *Fetcher) FetchFollowers(ctx context.Context, url string) (int, error) {
	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return 0, lastErr
	}

	return extractFollowers(doc), nil
}

// extractFollowers looks for a follower figure in the places public profile
// pages commonly surface one: og meta descriptions first, then any element
// whose text mentions followers/subscribers.
func extractFollowers(doc *goquery.Document) int {
	for _, sel := range []string{`meta[property="og:description"]`, `meta[name="description"]`} {
		if content, ok := doc.Find(sel).Attr("content"); ok {
			if n := followersFromText(content); n > 0 {
				return n
			}
		}
	}

	best := 0
	doc.Find("span, div, a").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if len(text) > 80 {
			return true
		}
		if n := followersFromText(text); n > 0 {
			best = n
			return false
		}
		return true
	})
	return best
}

var followersRE = regexp.MustCompile(`(?i)([\d][\d,. ]*[KkMm]?)\s*(followers|subscribers|abonnés)`)

func followersFromText(text string) int {
	m := followersRE.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return ParseCount(m[1])
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// ParseCount converts human-formatted counters ("1.2K", "12,345", "1 234",
// "5.6K views") into integers. Unparseable input yields 0.
func ParseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}
