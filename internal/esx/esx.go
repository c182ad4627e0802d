// Package esx indexes technologies into Elasticsearch for site search.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"portfolio-api/internal/config"
)

// Client is an alias for the Elasticsearch client
type Client = es8.Client

// Open creates an Elasticsearch client when ES_ADDRS is configured.
func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// TechDoc is the search projection of a technology.
type TechDoc struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	UseCase     string `json:"use_case"`
	UpdatedAt   string `json:"updated_at"`
}

// IndexTechnology upserts one technology document.
func IndexTechnology(ctx context.Context, es *Client, index string, doc TechDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b), es.Index.WithDocumentID(doc.ID), es.Index.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return esError(res)
	}
	return nil
}

// DeleteTechnology removes a technology document; a missing doc is not an error.
func DeleteTechnology(ctx context.Context, es *Client, index, id string) error {
	if es == nil {
		return nil
	}
	res, err := es.Delete(index, id, es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode != http.StatusNotFound {
		return esError(res)
	}
	return nil
}

// SearchTechnologies runs a multi-field match over indexed technologies.
func SearchTechnologies(ctx context.Context, es *Client, index string, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{"query": map[string]any{"multi_match": map[string]any{
		"query":  query,
		"fields": []string{"company_name^3", "category", "description", "use_case"},
	}}}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, esError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func esError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
