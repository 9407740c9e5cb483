package rawparser

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	goccyjson "github.com/goccy/go-json"

	"github.com/K-Mistele/jsonish-sub001/value"
)

// parseChunkStrict attempts a well-formed JSON parse of a single
// multi-object chunk (§4.1.1 strategy 3: "try strict JSON first, then the
// Fixing State Machine"), via goccy/go-json's decoder rather than the
// jsontext one parseStrict uses for the whole-document pass. goccy/go-json
// is a drop-in, token-compatible encoding/json replacement (Token, More,
// UseNumber all behave the same way), so this keeps the same order- and
// duplicate-preserving token walk as parseStrict while using the faster
// decoder the pack already depends on for exactly this kind of
// already-bracket-matched, independently-decoded span.
func parseChunkStrict(chunk string) (*value.Value, bool) {
	trimmed := strings.TrimSpace(chunk)
	if trimmed == "" {
		return nil, false
	}

	dec := goccyjson.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	v, err := decodeGoccyValue(dec, 0)
	if err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

func decodeGoccyValue(dec *goccyjson.Decoder, depth int) (*value.Value, error) {
	if depth > maxDepth {
		return nil, &DepthExceededError{Limit: maxDepth}
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case goccyjson.Delim:
		switch t {
		case '{':
			return decodeGoccyObject(dec, depth+1)
		case '[':
			return decodeGoccyArray(dec, depth+1)
		default:
			return nil, fmt.Errorf("rawparser: unexpected delimiter %q", t)
		}
	case string:
		return value.String(t), nil
	case goccyjson.Number:
		r, ok := new(big.Rat).SetString(t.String())
		if !ok {
			return nil, fmt.Errorf("rawparser: invalid number literal %q", t.String())
		}
		return value.Number(r), nil
	case bool:
		return value.Boolean(t), nil
	case nil:
		return value.Null(), nil
	default:
		return nil, fmt.Errorf("rawparser: unexpected token %T", tok)
	}
}

func decodeGoccyObject(dec *goccyjson.Decoder, depth int) (*value.Value, error) {
	if depth > maxDepth {
		return nil, &DepthExceededError{Limit: maxDepth}
	}

	var members []value.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("rawparser: object key is not a string")
		}
		val, err := decodeGoccyValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		members = append(members, value.Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return value.Object(members, value.Complete), nil
}

func decodeGoccyArray(dec *goccyjson.Decoder, depth int) (*value.Value, error) {
	if depth > maxDepth {
		return nil, &DepthExceededError{Limit: maxDepth}
	}

	var items []*value.Value
	for dec.More() {
		val, err := decodeGoccyValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return value.Array(items, value.Complete), nil
}
