package nara

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gonggo/internal/normalize"
)

type envelope struct {
	Response *struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			TotalCount flexInt         `json:"totalCount"`
			Items      json.RawMessage `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// rawBid carries the upstream field names verbatim.
type rawBid struct {
	BidNtceNo          string `json:"bidNtceNo"`
	BidNtceOrd         string `json:"bidNtceOrd"`
	BidNtceNm          string `json:"bidNtceNm"`
	BidNtceSj          string `json:"bidNtceSj"`
	BidNtceDt          string `json:"bidNtceDt"`
	PblancDate         string `json:"pblancDate"`
	BidBeginDt         string `json:"bidBeginDt"`
	BidClseDt          string `json:"bidClseDt"`
	OpengDt            string `json:"opengDt"`
	NtceInsttNm        string `json:"ntceInsttNm"`
	DminsttNm          string `json:"dminsttNm"`
	BidMethdNm         string `json:"bidMethdNm"`
	CntrctCnclsMthdNm  string `json:"cntrctCnclsMthdNm"`
	NtceKindNm         string `json:"ntceKindNm"`
	RgstTyNm           string `json:"rgstTyNm"`
	BidNtceDtlURL      string `json:"bidNtceDtlUrl"`
	BidNtceURL         string `json:"bidNtceUrl"`
	IntrbidYn          string `json:"intrbidYn"`
	AsignBdgtAmt       string `json:"asignBdgtAmt"`
	PresmptPrce        string `json:"presmptPrce"`
	PrtcptLmtRgnNm     string `json:"prtcptLmtRgnNm"`
	RefNo              string `json:"refNo"`
	NtceInsttOfclTelNo string `json:"ntceInsttOfclTelNo"`
	ChargerInsttNm     string `json:"chargerInsttNm"`
}

// Bid is a normalized bid listing row served to the dashboard.
type Bid struct {
	ID              string           `json:"id"`
	BidNo           *string          `json:"bidNo"`
	BidOrder        *string          `json:"bidOrder"`
	Title           string           `json:"title"`
	NoticeDate      *time.Time       `json:"noticeDate"`
	BidBeginDate    *time.Time       `json:"bidBeginDate"`
	BidEndDate      *time.Time       `json:"bidEndDate"`
	OpeningDate     *time.Time       `json:"openingDate"`
	Organization    *string          `json:"organization"`
	Client          *string          `json:"client"`
	Method          *string          `json:"method"`
	Contract        *string          `json:"contract"`
	NoticeType      *string          `json:"noticeType"`
	RegisterType    *string          `json:"registerType"`
	DetailURL       *string          `json:"detailUrl"`
	NoticeURL       *string          `json:"noticeUrl"`
	IsInternational bool             `json:"isInternational"`
	Budget          *decimal.Decimal `json:"budget"`
	Estimate        *decimal.Decimal `json:"estimate"`
	RegionLimit     *string          `json:"regionLimit"`
	ReferenceNo     *string          `json:"referenceNo"`
	Telephone       *string          `json:"telephone"`
	Tags            []string         `json:"tags"`
}

// rowsOf tolerates the three envelope shapes: {"items":{"item":[...]}} or
// {"items":[...]} or absent.
func rowsOf(raw json.RawMessage) ([]rawBid, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var rows []rawBid
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var wrapped struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if len(wrapped.Item) == 0 || string(wrapped.Item) == "null" {
		return nil, nil
	}
	inner := strings.TrimSpace(string(wrapped.Item))
	if strings.HasPrefix(inner, "[") {
		var rows []rawBid
		if err := json.Unmarshal(wrapped.Item, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var row rawBid
	if err := json.Unmarshal(wrapped.Item, &row); err != nil {
		return nil, err
	}
	return []rawBid{row}, nil
}

func normalizeBid(raw rawBid) Bid {
	bidNo := safeString(raw.BidNtceNo)
	bidOrder := safeString(raw.BidNtceOrd)

	tagSet := map[string]struct{}{}
	for _, candidate := range []*string{
		safeString(raw.NtceKindNm),
		safeString(raw.BidMethdNm),
		safeString(raw.CntrctCnclsMthdNm),
		safeString(raw.RgstTyNm),
		safeString(raw.ChargerInsttNm),
	} {
		if candidate != nil {
			tagSet[*candidate] = struct{}{}
		}
	}
	international := strings.EqualFold(strings.TrimSpace(raw.IntrbidYn), "Y")
	if international {
		tagSet["국제입찰"] = struct{}{}
	}
	if region := safeString(raw.PrtcptLmtRgnNm); region != nil {
		tagSet["지역제한:"+*region] = struct{}{}
	}
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	title := "입찰공고"
	if t := safeString(raw.BidNtceNm); t != nil {
		title = *t
	} else if t := safeString(raw.BidNtceSj); t != nil {
		title = *t
	}

	id := joinNonEmpty(bidNo, bidOrder)
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	noticeDate := raw.BidNtceDt
	if strings.TrimSpace(noticeDate) == "" {
		noticeDate = raw.PblancDate
	}

	return Bid{
		ID:              id,
		BidNo:           bidNo,
		BidOrder:        bidOrder,
		Title:           title,
		NoticeDate:      normalize.ParseDate(noticeDate),
		BidBeginDate:    normalize.ParseDate(raw.BidBeginDt),
		BidEndDate:      normalize.ParseDate(raw.BidClseDt),
		OpeningDate:     normalize.ParseDate(raw.OpengDt),
		Organization:    safeString(raw.NtceInsttNm),
		Client:          safeString(raw.DminsttNm),
		Method:          safeString(raw.BidMethdNm),
		Contract:        safeString(raw.CntrctCnclsMthdNm),
		NoticeType:      safeString(raw.NtceKindNm),
		RegisterType:    safeString(raw.RgstTyNm),
		DetailURL:       safeString(raw.BidNtceDtlURL),
		NoticeURL:       firstNonNil(safeString(raw.BidNtceURL), safeString(raw.BidNtceDtlURL)),
		IsInternational: international,
		Budget:          parseAmount(raw.AsignBdgtAmt),
		Estimate:        parseAmount(raw.PresmptPrce),
		RegionLimit:     safeString(raw.PrtcptLmtRgnNm),
		ReferenceNo:     safeString(raw.RefNo),
		Telephone:       safeString(raw.NtceInsttOfclTelNo),
		Tags:            tags,
	}
}

func safeString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func firstNonNil(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func joinNonEmpty(parts ...*string) string {
	var out []string
	for _, p := range parts {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	return strings.Join(out, "_")
}

// parseAmount reads a comma-grouped won amount into a decimal.
func parseAmount(s string) *decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// flexInt tolerates totalCount arriving as a string or a number.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if trimmed == "" || trimmed == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}
