package models

// Payload is a decoded claims object. No schema is enforced.
type Payload map[string]interface{}

// AsPayload returns v as a Payload when it is a JSON object, nil otherwise.
func AsPayload(v interface{}) Payload {
	switch m := v.(type) {
	case Payload:
		return m
	case map[string]interface{}:
		return Payload(m)
	}
	return nil
}

func (p Payload) Username() string {
	s, _ := p["username"].(string)
	return s
}

func (p Payload) Subject() string {
	s, _ := p["sub"].(string)
	return s
}

// Permissions returns the string entries of the "permissions" claim.
// Non-string entries are skipped.
func (p Payload) Permissions() []string {
	raw, ok := p["permissions"].([]interface{})
	if !ok {
		return nil
	}
	perms := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			perms = append(perms, s)
		}
	}
	return perms
}

// Audience accepts both the single-string and the list form of "aud".
func (p Payload) Audience() []string {
	switch aud := p["aud"].(type) {
	case string:
		return []string{aud}
	case []interface{}:
		out := make([]string, 0, len(aud))
		for _, v := range aud {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

type Header struct {
	Alg string `json:"alg,omitempty"`
	Typ string `json:"typ,omitempty"`
	Kid string `json:"kid,omitempty"`
}

// Inspection is what the inspector reports about a single token.
// Payload holds any JSON value; Claims gives the object view.
type Inspection struct {
	Header           *Header     `json:"header,omitempty"`
	Payload          interface{} `json:"payload"`
	Permissions      []string    `json:"permissions"`
	SignaturePresent bool        `json:"signature_present"`
}

func (i *Inspection) Claims() Payload {
	return AsPayload(i.Payload)
}
