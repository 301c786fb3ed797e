package assets

import (
	"context"

	"riftwatch/fetcher/requests"
	"riftwatch/pkg/models/champion"
)

const ddragon = "https://ddragon.leagueoflegends.com/"

// CatalogSource is what the champion cache needs from the Data Dragon.
type CatalogSource interface {
	GetLatestVersion(ctx context.Context) (string, error)
	GetChampionCatalog(ctx context.Context, version string) (map[string]champion.Champion, error)
}

// Fetcher reads the static datasets from the Data Dragon CDN.
// The CDN is unauthenticated and isn't subject to the riot rate limits.
type Fetcher struct {
	client *requests.Client
}

// CreateFetcher creates a assets fetcher.
func CreateFetcher(client *requests.Client) *Fetcher {
	return &Fetcher{
		client: client,
	}
}
