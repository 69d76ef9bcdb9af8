// Package tablestore is the gateway to the remote table-store service.
// Collections are resolved to opaque remote table identifiers through a
// static lookup; every call logs its outcome.
package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"AgentDesk/entity"
	"AgentDesk/internal/config"
	"AgentDesk/internal/lib/sl"
)

// ErrUnknownCollection is a configuration error: the collection name has
// no remote table id.
var ErrUnknownCollection = errors.New("unknown collection")

// tableIds maps collection names onto the identifiers the remote store
// assigned when the tables were provisioned.
var tableIds = map[string]string{
	entity.CollectionUsers:         "mtb4k2xqw1users0",
	entity.CollectionMessages:      "mtb4k2xqw1msgs00",
	entity.CollectionCalls:         "mtb4k2xqw1calls0",
	entity.CollectionLeads:         "mtb4k2xqw1leads0",
	entity.CollectionOffers:        "mtb4k2xqw1offrs0",
	entity.CollectionInvoices:      "mtb4k2xqw1invcs0",
	entity.CollectionPayments:      "mtb4k2xqw1pymts0",
	entity.CollectionNotifications: "mtb4k2xqw1notif0",
	entity.CollectionAdmins:        "mtb4k2xqw1admns0",
	entity.CollectionDashboardLogs: "mtb4k2xqw1dlogs0",
}

// StatusError carries a non-2xx remote response: the server-reported
// message when one was parseable, the HTTP status otherwise.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http status %d", e.Status)
}

type Store struct {
	baseURL string
	token   string
	client  *http.Client
	log     *slog.Logger
}

func New(conf *config.Config, log *slog.Logger) *Store {
	return &Store{
		baseURL: conf.TableStore.BaseURL,
		token:   conf.TableStore.Token,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log.With(sl.Module("tablestore")),
	}
}

func (s *Store) recordsURL(collection string, params url.Values) (string, error) {
	tableId, ok := tableIds[collection]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u = u.JoinPath("api", "v2", "tables", tableId, "records")
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

// do executes one request against the remote store, decoding the response
// into out when out is non-nil.
func (s *Store) do(ctx context.Context, method, fullURL string, body, out any) (err error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xc-token", s.token)
	req.Header.Set("Content-Type", "application/json")

	log := s.log.With(
		slog.String("url", fullURL),
		slog.String("method", method),
	)

	t := time.Now()
	defer func() {
		log = log.With(slog.Duration("duration", time.Since(t)))
		if err != nil {
			log.Error("table store call", sl.Err(err))
		} else {
			log.Debug("table store call")
		}
	}()

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Status:  resp.StatusCode,
			Message: remoteMessage(bodyBytes),
		}
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func remoteMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Msg
}
