package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"resty.dev/v3"
)

type Config struct {
	BaseURL    string
	MaxResults int
}

// Client implements Finder against the Datamuse /words endpoint.
// A nil cache means every Find goes to the API.
type Client struct {
	httpClient *resty.Client
	maxResults int
	cache      ResponseCache
}

func NewClient(config Config, cache ResponseCache) *Client {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)

	return &Client{
		httpClient: client,
		maxResults: config.MaxResults,
		cache:      cache,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) lookupAPI(ctx context.Context, relation Relation, word string) ([]byte, error) {
	param, err := relation.Param()
	if err != nil {
		return nil, fmt.Errorf("relation.Param > %w", err)
	}

	request := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam(param, word)
	if client.maxResults > 0 {
		request = request.SetQueryParam("max", strconv.Itoa(client.maxResults))
	}

	response, err := request.Get("/words")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Bytes(), nil
}

// Find returns the words related to word, most relevant first as the
// API scores them. The raw response body goes through the cache when
// one is configured.
func (client *Client) Find(ctx context.Context, relation Relation, word string) ([]Word, error) {
	fetch := func() ([]byte, error) {
		body, err := client.lookupAPI(ctx, relation, word)
		if err != nil {
			return nil, fmt.Errorf("client.lookupAPI > %w", err)
		}
		return body, nil
	}

	var contents []byte
	var err error
	if client.cache != nil {
		contents, err = client.cache.Fetch(ctx, relation, word, fetch)
		if err != nil {
			return nil, fmt.Errorf("cache.Fetch > %w", err)
		}
	} else {
		contents, err = fetch()
		if err != nil {
			return nil, err
		}
	}

	var words []Word
	if err := json.Unmarshal(contents, &words); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return words, nil
}
