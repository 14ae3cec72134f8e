package store

import (
	"context"
	"fmt"
	"time"

	"fabricshop/bot/internal/config"
	"fabricshop/bot/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type airtableStore struct {
	config     config.AirtableConfig
	httpClient *resty.Client
}

// listResponse is one page of the Airtable list endpoint. A non-empty offset
// means more pages follow.
type listResponse struct {
	Records []domain.Record `json:"records"`
	Offset  string          `json:"offset"`
}

func NewAirtableStore(cfg config.AirtableConfig) RecordStore {
	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", cfg.BaseURL, cfg.BaseID)).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetAuthToken(cfg.Token)

	return &airtableStore{
		config:     cfg,
		httpClient: httpClient,
	}
}

// GetAllRecords fetches every row of the table, following the offset cursor
// until the last page.
func (s *airtableStore) GetAllRecords(ctx context.Context, table string) ([]domain.Record, error) {
	records := make([]domain.Record, 0)
	offset := ""

	for {
		var page listResponse

		req := s.httpClient.R().
			SetContext(ctx).
			SetResult(&page)
		if offset != "" {
			req.SetQueryParam("offset", offset)
		}

		resp, err := req.Get("/" + table)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch records from %s: %w", table, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("airtable error for %s: %d %s", table, resp.StatusCode(), resp.String())
		}

		records = append(records, page.Records...)

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	log.Debugf("Fetched %d records from %s", len(records), table)
	return records, nil
}

// GetRecord fetches a single row by record id.
func (s *airtableStore) GetRecord(ctx context.Context, id, table string) (domain.Record, error) {
	var record domain.Record

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(&record).
		Get(fmt.Sprintf("/%s/%s", table, id))

	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to fetch record %s from %s: %w", id, table, err)
	}
	if resp.StatusCode() == 404 {
		return domain.Record{}, ErrRecordNotFound
	}
	if resp.IsError() {
		return domain.Record{}, fmt.Errorf("airtable error for %s/%s: %d %s", table, id, resp.StatusCode(), resp.String())
	}

	return record, nil
}
