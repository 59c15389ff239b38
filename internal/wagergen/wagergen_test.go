package wagergen

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/betcha-app/betcha/internal/config"
	"github.com/betcha-app/betcha/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)

	cfg := &config.Config{GeneratorAddress: "http://localhost:8081"}
	client := New(cfg, httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(httpClient *clients.MockHTTPClientI)
		check       func(t *testing.T, candidates []Candidate)
	}{
		{
			name: "Generator response is passed through",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				body := []byte(`{"candidates":[{"text":"Bet you can't juggle","suggested_stake":30,"category":"dares"}]}`)
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, body, nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Len(t, candidates, 1)
				assert.Equal(t, "Bet you can't juggle", candidates[0].Text)
				assert.Equal(t, int64(30), candidates[0].SuggestedStake)
			},
		},
		{
			name: "Unreachable generator falls back",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Equal(t, fallbackCandidates[2], candidates)
			},
		},
		{
			name: "Unexpected status falls back",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Equal(t, fallbackCandidates[2], candidates)
			},
		},
		{
			name: "Malformed response falls back",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Equal(t, fallbackCandidates[2], candidates)
			},
		},
		{
			name: "Candidates with non-positive stakes are dropped",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				body := []byte(`{"candidates":[{"text":"Bet you can't whistle","suggested_stake":-5,"category":"dares"},{"text":"Bet you can't juggle","suggested_stake":30,"category":"dares"}]}`)
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, body, nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Len(t, candidates, 1)
				assert.Equal(t, "Bet you can't juggle", candidates[0].Text)
			},
		},
		{
			name: "Only invalid candidates falls back",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				body := []byte(`{"candidates":[{"text":"Bet you can't whistle","suggested_stake":0,"category":"dares"}]}`)
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, body, nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Equal(t, fallbackCandidates[2], candidates)
			},
		},
		{
			name: "Empty candidate list falls back",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().
					Post("http://localhost:8081/api/candidates", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"candidates":[]}`), nil)
			},
			check: func(t *testing.T, candidates []Candidate) {
				assert.Equal(t, fallbackCandidates[2], candidates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			tt.prepareMock(httpClient)

			candidates := client.Candidates(context.Background(), 2, "alex", "balanced")
			tt.check(t, candidates)
		})
	}
}

func TestFallback(t *testing.T) {
	assert.Equal(t, fallbackCandidates[1], fallback(1))
	assert.Equal(t, fallbackCandidates[3], fallback(3))
	assert.Equal(t, fallbackCandidates[1], fallback(7))
}
