package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeDecode    = "decode"
)

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Code)
}

type Observer interface {
	ObserveFetch(res Resource, outcome string, elapsed time.Duration)
}

type Client struct {
	Resolver Resolver
	HTTP     *http.Client
	Observer Observer
	Log      logrus.FieldLogger
}

// NewClient returns a client for resolver. A zero timeout means requests
// never time out.
func NewClient(resolver Resolver, timeout time.Duration) *Client {
	return &Client{
		Resolver: resolver,
		HTTP: &http.Client{
			Timeout: timeout,
		},
		Log: logrus.StandardLogger(),
	}
}

// List reads one resource and returns its normalized list.
func (c *Client) List(ctx context.Context, res Resource) ([]Record, error) {
	url := c.Resolver.URL(res)
	log := c.logger().WithFields(logrus.Fields{
		"resource": res,
		"url":      url,
	})
	log.Debug("fetching list")

	start := time.Now()
	body, outcome, err := c.get(ctx, url)
	if c.Observer != nil {
		c.Observer.ObserveFetch(res, outcome, time.Since(start))
	}
	if err != nil {
		log.WithError(err).Errorf("error fetching %s", res)
		return nil, err
	}

	records := Normalize(body)
	log.WithField("count", len(records)).Debug("list received")
	return records, nil
}

func (c *Client) get(ctx context.Context, url string) (interface{}, string, error) {
	response, err := ctxhttp.Get(ctx, c.HTTP, url)
	if err != nil {
		return nil, OutcomeTransport, errors.Wrap(err, "could not do request")
	}
	defer response.Body.Close()

	if response.StatusCode/100 != 2 {
		return nil, OutcomeStatus, &StatusError{Code: response.StatusCode}
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, OutcomeTransport, errors.Wrap(err, "could not read response")
	}

	// Unmarshal rejects anything after the first value.
	var body interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, OutcomeDecode, errors.Wrap(err, "could not decode response")
	}

	return body, OutcomeOK, nil
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Normalize unwraps a {"results": [...]} envelope and falls back to an
// empty list for anything that is not list shaped.
func Normalize(body interface{}) []Record {
	if envelope, ok := body.(map[string]interface{}); ok {
		if results, ok := envelope["results"]; ok && Truthy(results) {
			body = results
		}
	}

	items, ok := body.([]interface{})
	if !ok {
		return []Record{}
	}

	records := make([]Record, len(items))
	for i, item := range items {
		if fields, ok := item.(map[string]interface{}); ok {
			records[i] = Record(fields)
		} else {
			records[i] = Record{}
		}
	}
	return records
}
