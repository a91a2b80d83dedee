package scrape

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/slok/zentao/internal/model"
)

const finishSuccessMarker = "parent.parent.location.reload()"

var alertRegexp = regexp.MustCompile(`alert\(\s*['"](.*?)['"]\s*\)`)

type submitResultJSON struct {
	Result  string          `json:"result"`
	Message json.RawMessage `json:"message"`
}

// ParseFinishResponse classifies the response of a task finish submission.
//
// Zentao answers 200 in every case: rejections embed an `alert('<message>')`
// script (or a JSON result on newer versions) and a success reloads the parent page.
func (p *Parser) ParseFinishResponse(body string) error {
	if m := alertRegexp.FindStringSubmatch(body); m != nil {
		msg := unescapeJS(m[1])
		p.logger.Warningf("task finish rejected: %s", msg)
		return &model.SubmissionFailedError{Message: msg}
	}

	if strings.Contains(body, finishSuccessMarker) {
		return nil
	}

	var res submitResultJSON
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &res); err == nil && res.Result != "" {
		if res.Result == "success" {
			return nil
		}
		msg := jsonMessage(res.Message)
		if msg == "" {
			msg = p.locale.SubmissionRejected
		}
		p.logger.Warningf("task finish rejected: %s", msg)
		return &model.SubmissionFailedError{Message: msg}
	}

	p.logger.Warningf("task finish response has no success marker")
	return &model.SubmissionFailedError{Message: p.locale.SubmissionRejected}
}

// jsonMessage flattens Zentao messages, that can be a string or field errors
// like {"consumed": ["..."]}.
func jsonMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return string(raw)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := fields[k].(type) {
		case string:
			msgs = append(msgs, v)
		case []any:
			for _, item := range v {
				msgs = append(msgs, fmt.Sprint(item))
			}
		default:
			msgs = append(msgs, fmt.Sprint(v))
		}
	}
	return strings.Join(msgs, "; ")
}

func unescapeJS(s string) string {
	r := strings.NewReplacer(`\n`, "\n", `\'`, "'", `\"`, `"`, `\\`, `\`)
	return strings.TrimSpace(r.Replace(s))
}
