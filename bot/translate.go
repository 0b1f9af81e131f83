// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxTextReplyLength is the platform's reply size limit; longer
// translations are refused with a "too long" notice.
const maxTextReplyLength = 320

const defaultTranslateURL = "https://translation.googleapis.com/language/translate/v2"

// Translator is the machine-translation capability. The context code
// carries both halves of the pair; any failure maps uniformly to the
// generic translation-error reply.
type Translator interface {
	Translate(text string, contextCode string) (string, error)
}

type googleTranslator struct {
	client *resty.Client
	url    string
	key    string
}

// NewGoogleTranslator returns a Translator backed by the Google
// translation REST API.
func NewGoogleTranslator(url, key string, timeout time.Duration) Translator {
	if url == "" {
		url = defaultTranslateURL
	}
	return &googleTranslator{
		client: resty.New().SetTimeout(timeout),
		url:    url,
		key:    key,
	}
}

func (g *googleTranslator) Translate(text string, contextCode string) (string, error) {
	halves := strings.SplitN(contextCode, ":", 2)
	if len(halves) != 2 {
		return "", fmt.Errorf("malformed context code: %s", contextCode)
	}

	var response struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}

	resp, err := g.client.R().
		SetQueryParams(map[string]string{
			"key":    g.key,
			"q":      text,
			"source": halves[0],
			"target": halves[1],
			"format": "text",
		}).
		SetResult(&response).
		Post(g.url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s", errTranslation, resp.Status())
	}
	if len(response.Data.Translations) == 0 {
		return "", fmt.Errorf("%w: empty response", errTranslation)
	}
	return response.Data.Translations[0].TranslatedText, nil
}
