package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blixt/unistyle/textstyle"
)

type applyParams struct {
	Text    string `json:"text"`
	Style   string `json:"style"`
	Accents bool   `json:"accents"`
}

type stripParams struct {
	Text              string `json:"text"`
	PreserveCombining bool   `json:"preserveCombining"`
}

type convertParams struct {
	Text    string `json:"text"`
	Variant string `json:"variant"`
}

type listParams struct {
	Text string             `json:"text"`
	Kind textstyle.ListKind `json:"kind"`
}

type textParams struct {
	Text string `json:"text"`
}

// CharEmphasis is one entry of a detect reply.
type CharEmphasis struct {
	Char     string             `json:"char"`
	Plain    string             `json:"plain"`
	Emphasis textstyle.Emphasis `json:"emphasis"`
}

func dispatch(method string, raw json.RawMessage) (any, error) {
	switch method {
	case "apply":
		var p applyParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		style, err := textstyle.ParseStyle(p.Style)
		if err != nil {
			return nil, err
		}
		if p.Accents {
			return textstyle.ApplyAccented(p.Text, style), nil
		}
		return textstyle.Apply(p.Text, style), nil
	case "strip":
		var p stripParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return textstyle.StripFormatting(p.Text, p.PreserveCombining), nil
	case "convert":
		var p convertParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		variant, err := textstyle.ParseStyle(p.Variant)
		if err != nil {
			return nil, err
		}
		return textstyle.ConvertPreservingEmphasis(p.Text, variant), nil
	case "detect":
		var p textParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		chars := []CharEmphasis{}
		for _, r := range p.Text {
			plain, emphasis := textstyle.DetectEmphasis(r)
			chars = append(chars, CharEmphasis{Char: string(r), Plain: string(plain), Emphasis: emphasis})
		}
		return chars, nil
	case "list":
		var p listParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return textstyle.ToList(p.Kind, p.Text)
	case "markdown":
		var p textParams
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return textstyle.RenderMarkdown(p.Text), nil
	case "styles":
		return textstyle.AvailableStyles(), nil
	}
	return nil, fmt.Errorf("unknown method %q", method)
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errors.New("missing params")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
