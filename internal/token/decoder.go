package token

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/honeynil/coffee-token-inspector/internal/models"
	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
)

// segmentParser only decodes segments; it is never asked to verify anything.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// Split returns the dot-separated segments of tok.
// At least header and payload must be present.
func Split(tok string) ([]string, error) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return nil, pkgerrors.ErrMalformedToken
	}
	return parts, nil
}

// DecodePayload decodes the claims segment of tok without verifying the signature.
// The result is whatever JSON value the segment holds; use models.AsPayload
// for a typed view of an object.
func DecodePayload(tok string) (interface{}, error) {
	parts, err := Split(tok)
	if err != nil {
		return nil, err
	}
	data, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("payload: %w: %v", pkgerrors.ErrParse, err)
	}
	return v, nil
}

// DecodeHeader decodes the JOSE header segment of tok. The header must be an object.
func DecodeHeader(tok string) (*models.Header, error) {
	parts, err := Split(tok)
	if err != nil {
		return nil, err
	}
	data, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	var raw jwt.MapClaims
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("header: %w: %v", pkgerrors.ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("header: %w", pkgerrors.ErrParse)
	}
	h := &models.Header{}
	h.Alg, _ = raw["alg"].(string)
	h.Typ, _ = raw["typ"].(string)
	h.Kid, _ = raw["kid"].(string)
	return h, nil
}

// decodeSegment returns the base64url-decoded bytes of seg, which must be UTF-8.
func decodeSegment(seg string) ([]byte, error) {
	data, err := segmentParser.DecodeSegment(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrDecode, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", pkgerrors.ErrDecode)
	}
	return data, nil
}
