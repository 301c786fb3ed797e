package playerfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"riftwatch/fetcher/requests"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"
)

// PlayerFetcher does the account level requests on the routing region.
type PlayerFetcher struct {
	client *requests.Client
	region string
}

// SubPlayerFetcher does the player requests bound to the platform region.
type SubPlayerFetcher struct {
	client *requests.Client
	region string
}

// CreatePlayerFetcher creates a player fetcher for the routing region.
func CreatePlayerFetcher(client *requests.Client, region string) *PlayerFetcher {
	return &PlayerFetcher{
		client,
		region,
	}
}

// CreateSubPlayerFetcher creates a player fetcher for the platform region.
func CreateSubPlayerFetcher(client *requests.Client, region string) *SubPlayerFetcher {
	return &SubPlayerFetcher{
		client,
		region,
	}
}

// GetAccountByRiotId resolves a riot id (name + tag) into a account.
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		p.region, url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := p.client.AuthRequest(ctx, reqURL, http.MethodGet, nil)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	if err := checkStatus(resp, reqURL, messages.AccountNotFound); err != nil {
		return nil, err
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return &account, nil
}

// GetMatchList returns the most recent match ids for a player.
// A queue of 0 doesn't filter by queue.
func (p *PlayerFetcher) GetMatchList(ctx context.Context, puuid string, queue int, count int) ([]string, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids", p.region, puuid)

	params := map[string]string{
		"count": strconv.Itoa(count),
	}
	if queue != 0 {
		params["queue"] = strconv.Itoa(queue)
	}

	resp, err := p.client.AuthRequest(ctx, reqURL, http.MethodGet, params)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	if err := checkStatus(resp, reqURL, messages.AccountNotFound); err != nil {
		return nil, err
	}

	var matches []string
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return matches, nil
}

// GetTopMasteries returns the top champion masteries by points for a player.
func (p *SubPlayerFetcher) GetTopMasteries(ctx context.Context, puuid string, count int) ([]MasteryEntry, error) {
	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top",
		p.region, puuid)

	params := map[string]string{
		"count": strconv.Itoa(count),
	}

	resp, err := p.client.AuthRequest(ctx, reqURL, http.MethodGet, params)
	if err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, fmt.Sprintf(messages.RequestFailedMsg, reqURL), err)
	}

	defer resp.Body.Close()

	if err := checkStatus(resp, reqURL, messages.AccountNotFound); err != nil {
		return nil, err
	}

	var masteries []MasteryEntry
	if err := json.NewDecoder(resp.Body).Decode(&masteries); err != nil {
		return nil, apierror.Wrap(apierror.UpstreamUnavailable, messages.FailedToParseMsg, err)
	}

	return masteries, nil
}

// checkStatus maps a non success status to the error taxonomy.
func checkStatus(resp *http.Response, reqURL string, notFoundMsg string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return apierror.New(apierror.NotFound, notFoundMsg)
	case http.StatusTooManyRequests:
		return apierror.New(apierror.RateLimited, messages.RateLimitedMsg)
	default:
		return apierror.Newf(apierror.UpstreamUnavailable, messages.BadStatusCodeMsg, resp.StatusCode, reqURL)
	}
}
