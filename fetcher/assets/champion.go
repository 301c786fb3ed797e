package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"riftwatch/pkg/models/champion"
	"riftwatch/pkg/models/image"
)

// fullChampion is the raw champion.json payload.
type fullChampion struct {
	Data map[string]rawChampion `json:"data"`
}

// rawChampion is a single entry of the champion.json dataset.
// The ddragon keys entries by name key and carries the numeric id in "key".
type rawChampion struct {
	Key   string `json:"key"`
	Id    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Image struct {
		Full   string `json:"full"`
		Sprite string `json:"sprite"`
		Group  string `json:"group"`
	} `json:"image"`
}

// GetChampionCatalog gets the full champion catalog for a given version,
// keyed by the numeric champion key used on the match endpoints.
func (f *Fetcher) GetChampionCatalog(ctx context.Context, version string) (map[string]champion.Champion, error) {
	url := fmt.Sprintf("%scdn/%s/data/en_US/champion.json", ddragon, version)
	resp, err := f.client.Request(ctx, url, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion catalog: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("champion catalog request returned status code %d", resp.StatusCode)
	}

	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	catalog := make(map[string]champion.Champion, len(championsData.Data))
	for _, raw := range championsData.Data {
		catalog[raw.Key] = champion.Champion{
			ID:      raw.Key,
			NameKey: raw.Id,
			Name:    raw.Name,
			Title:   raw.Title,
			Image: image.Image{
				Full:   raw.Image.Full,
				Sprite: raw.Image.Sprite,
				Group:  raw.Image.Group,
			},
		}
	}

	return catalog, nil
}
