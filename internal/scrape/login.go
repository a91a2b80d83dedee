package scrape

import (
	"encoding/json"
	"strings"

	"github.com/slok/zentao/internal/model"
)

type loginResultJSON struct {
	Result  string          `json:"result"`
	Message json.RawMessage `json:"message"`
	Locate  string          `json:"locate"`
}

// ParseLoginResponse classifies the JSON answer of the login endpoint.
func (p *Parser) ParseLoginResponse(body string) error {
	var res loginResultJSON
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &res); err != nil {
		p.logger.Errorf("could not parse login response: %s", err)
		return &model.LoginResponseParseError{Raw: body}
	}

	if res.Result == "success" {
		p.logger.Debugf("login succeeded, redirect to %q", res.Locate)
		return nil
	}

	msg := jsonMessage(res.Message)
	if msg == "" {
		msg = p.locale.UnknownReason
	}
	return &model.LoginFailedError{Result: res.Result, Message: msg}
}
