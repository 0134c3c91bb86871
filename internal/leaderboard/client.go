package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avasilyev/chainpop/internal/game"
)

// Client submits scores to a remote leaderboard API and reads the top list.
// Implements game.Submitter so a Round can use it directly.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the API at baseURL. The timeout bounds every
// request so a slow or unreachable server never blocks a running round.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitScore posts one finished round. Implements game.Submitter.
func (c *Client) SubmitScore(name string, score, maxChain int) error {
	body, err := json.Marshal(submitReq{Name: name, Score: score, MaxChain: maxChain})
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode score: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/scores", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: submit failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("leaderboard: submit rejected with status %d", resp.StatusCode)
	}
	return nil
}

// TopScores fetches the global top list. Implements game.Submitter.
func (c *Client) TopScores(limit int) ([]game.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	resp, err := c.http.Get(c.baseURL + "/scores?limit=" + strconv.Itoa(limit))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard: fetch rejected with status %d", resp.StatusCode)
	}

	var rows []scoreRes
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot decode response: %w", err)
	}

	entries := make([]game.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, game.LeaderboardEntry{
			Name:     r.Name,
			Score:    r.Score,
			MaxChain: r.MaxChain,
		})
	}
	return entries, nil
}

var _ game.Submitter = (*Client)(nil)
