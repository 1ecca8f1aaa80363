package bizinfo

import (
	"encoding/json"
	"strings"
)

// RawNotice is one announcement as the feed serves it. Field names mirror
// the upstream Korean-government schema; normalization happens downstream.
type RawNotice struct {
	Seq             FlexString `json:"seq"`
	PblancID        FlexString `json:"pblancId"`
	Title           string     `json:"title"`
	Link            string     `json:"link"`
	PblancURL       string     `json:"pblancUrl"`
	JrsdInsttNm     string     `json:"jrsdInsttNm"`
	LclasCodeNm     string     `json:"lclasCodeNm"`
	HashTag         string     `json:"hashTag"`
	ReqstBeginEndDe string     `json:"reqstBeginEndDe"`
	PubDate         string     `json:"pubDate"`
	CreatPnttm      string     `json:"creatPnttm"`
	InqireCo        FlexString `json:"inqireCo"`
	BsnsSumryCn     string     `json:"bsnsSumryCn"`
	FlpthNm         string     `json:"flpthNm"`
}

// Identity is the stable upsert key: seq when present, else pblancId.
// Empty means the record cannot be imported.
func (n RawNotice) Identity() string {
	if s := strings.TrimSpace(string(n.Seq)); s != "" {
		return s
	}
	return strings.TrimSpace(string(n.PblancID))
}

// FlexString tolerates the feed serving the same field as a JSON string or
// number depending on the record.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(trimmed)
	return nil
}

type envelope struct {
	JSONArray struct {
		Item json.RawMessage `json:"item"`
	} `json:"jsonArray"`
}

// parseItems normalizes the feed envelope, whose "item" field arrives as a
// single object, an array, or not at all, into a slice.
func parseItems(body []byte) ([]RawNotice, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	raw := env.JSONArray.Item
	if len(raw) == 0 || string(raw) == "null" {
		return []RawNotice{}, nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []RawNotice
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var item RawNotice
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return []RawNotice{item}, nil
}
