package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riftwatch/fetcher/requests"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"
)

// MatchFetcher does the match endpoints requests on the routing region.
type MatchFetcher struct {
	client *requests.Client
	region string
}

// CreateMatchFetcher creates a instance of the match fetcher.
func CreateMatchFetcher(client *requests.Client, region string) *MatchFetcher {
	return &MatchFetcher{
		client,
		region,
	}
}

// RiotTime handles the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// MarshalJSON writes the timestamp back as milliseconds.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Time gets the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// GetMatchData gets a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", m.region, matchId)

	resp, err := m.client.AuthRequest(ctx, reqURL, http.MethodGet, nil)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	if err := checkStatus(resp, reqURL); err != nil {
		return nil, err
	}

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return &matchData, nil
}

// GetMatchTimelineData gets a given match timeline.
func (m *MatchFetcher) GetMatchTimelineData(ctx context.Context, matchId string) (*MatchTimeline, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", m.region, matchId)

	resp, err := m.client.AuthRequest(ctx, reqURL, http.MethodGet, nil)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	if err := checkStatus(resp, reqURL); err != nil {
		return nil, err
	}

	var timeline MatchTimeline
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return &timeline, nil
}

// checkStatus maps a non success status to the error taxonomy.
func checkStatus(resp *http.Response, reqURL string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return apierror.New(apierror.NotFound, messages.MatchNotFound)
	case http.StatusTooManyRequests:
		return apierror.New(apierror.RateLimited, messages.RateLimitedMsg)
	default:
		return apierror.Newf(apierror.UpstreamUnavailable, messages.BadStatusCodeMsg, resp.StatusCode, reqURL)
	}
}
