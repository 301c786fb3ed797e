package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"riftwatch/fetcher/requests"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"
)

// LeagueFetcher does the league endpoints requests on the platform region.
type LeagueFetcher struct {
	client *requests.Client
	region string
}

// CreateLeagueFetcher creates a league fetcher.
func CreateLeagueFetcher(client *requests.Client, region string) *LeagueFetcher {
	return &LeagueFetcher{
		client,
		region,
	}
}

// GetLeagueByPuuid gets a given player entries for each ranked queue.
func (l *LeagueFetcher) GetLeagueByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		l.region, puuid)

	resp, err := l.client.AuthRequest(ctx, reqURL, http.MethodGet, nil)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Fallthrough to the decoding.
	case http.StatusNotFound:
		return nil, apierror.New(apierror.NotFound, messages.AccountNotFound)
	case http.StatusTooManyRequests:
		return nil, apierror.New(apierror.RateLimited, messages.RateLimitedMsg)
	default:
		return nil, apierror.Newf(apierror.UpstreamUnavailable, messages.BadStatusCodeMsg, resp.StatusCode, reqURL)
	}

	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return entries, nil
}
