package wagergen

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/betcha-app/betcha/internal/config"
	"github.com/betcha-app/betcha/pkg/clients"
	"go.uber.org/zap"
)

// Candidate is one wager statement suggested by the content generator.
type Candidate struct {
	Text           string `json:"text"`
	SuggestedStake int64  `json:"suggested_stake"`
	Category       string `json:"category"`
}

type request struct {
	HeatLevel   int    `json:"heat_level"`
	Counterpart string `json:"counterpart"`
	RiskProfile string `json:"risk_profile"`
}

type response struct {
	Candidates []Candidate `json:"candidates"`
}

// Client asks the external generator for wager candidates. The generator is
// treated as a pure function: one attempt, no retries, static fallback
// content on any failure.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GeneratorAddress,
		client: client,
	}
}

func (c *Client) Candidates(ctx context.Context, heatLevel int, counterpart, riskProfile string) []Candidate {
	body, err := json.Marshal(request{
		HeatLevel:   heatLevel,
		Counterpart: counterpart,
		RiskProfile: riskProfile,
	})
	if err != nil {
		zap.L().Error("can't marshal generator request", zap.Error(err))
		return fallback(heatLevel)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, respBody, err := c.client.Post(c.url+"/api/candidates", headers, body)
	if err != nil {
		zap.L().Warn("generator unreachable, using fallback content", zap.Error(err))
		return fallback(heatLevel)
	}
	if status != http.StatusOK {
		zap.L().Warn("generator returned unexpected status, using fallback content", zap.Int("status", status))
		return fallback(heatLevel)
	}

	var resp response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Warn("can't parse generator response, using fallback content", zap.Error(err))
		return fallback(heatLevel)
	}
	// Generator output feeds wager stakes, so a non-positive stake must
	// never get through.
	valid := resp.Candidates[:0]
	for _, candidate := range resp.Candidates {
		if candidate.SuggestedStake <= 0 || candidate.Text == "" {
			zap.L().Warn("generator candidate dropped", zap.Int64("stake", candidate.SuggestedStake))
			continue
		}
		valid = append(valid, candidate)
	}
	if len(valid) == 0 {
		return fallback(heatLevel)
	}
	return valid
}

var fallbackCandidates = map[int][]Candidate{
	1: {
		{Text: "Bet you won't drink only water tomorrow", SuggestedStake: 10, Category: "habits"},
		{Text: "Bet you can't stay off social media until noon", SuggestedStake: 10, Category: "habits"},
	},
	2: {
		{Text: "Bet you won't run 5k before Sunday", SuggestedStake: 25, Category: "fitness"},
		{Text: "Bet you can't cook dinner three nights in a row", SuggestedStake: 20, Category: "habits"},
	},
	3: {
		{Text: "Bet you won't sing karaoke in public this week", SuggestedStake: 50, Category: "dares"},
		{Text: "Bet you can't go a full day without your phone", SuggestedStake: 50, Category: "dares"},
	},
}

func fallback(heatLevel int) []Candidate {
	if c, ok := fallbackCandidates[heatLevel]; ok {
		return c
	}
	return fallbackCandidates[1]
}
