package scalerconfig

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"
)

// Number of attempts made to fetch a config URL.
const DefaultHttpTries = 5

// Client fetches config URLs; satisfied by *pester.Client and *http.Client.
type Client interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

func MakePesterClient() *pester.Client {
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = DefaultHttpTries
	client.LogHook = func(e pester.ErrEntry) {
		log.Errorf("Retrying after failed attempt: %+v", e)
	}
	return client
}

// GetConfigText finds the right text for a configFlag.
// An http(s) URL is fetched with client. Text starting with '{' or spanning several lines
// is taken as literal config. Anything else is read as a file path.
func GetConfigText(configFlag string, client Client) ([]byte, error) {
	trimmed := strings.TrimSpace(configFlag)
	switch {
	case trimmed == "":
		return nil, nil
	case strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://"):
		log.Infof("fetching config from %s", trimmed)
		return fetch(trimmed, client)
	case strings.HasPrefix(trimmed, "{") || strings.Contains(trimmed, "\n"):
		log.Debug("using --config as literal config")
		return []byte(configFlag), nil
	}
	log.Infof("reading config file %s", trimmed)
	text, err := ioutil.ReadFile(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", trimmed)
	}
	return text, nil
}

func fetch(url string, client Client) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	text, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}
	return text, nil
}

// Load gets and parses the config named by configFlag. It does not validate.
func Load(configFlag string, client Client) (*Config, error) {
	text, err := GetConfigText(configFlag, client)
	if err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	return Parse(text)
}
