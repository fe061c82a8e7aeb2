package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload_Accessors(t *testing.T) {
	p := Payload{
		"username":    "juicepro",
		"sub":         "auth0|42",
		"permissions": []interface{}{"get:drinks-detail", 7, "post:drinks"},
		"aud":         "drinks-detail",
	}
	assert.Equal(t, "juicepro", p.Username())
	assert.Equal(t, "auth0|42", p.Subject())
	assert.Equal(t, []string{"get:drinks-detail", "post:drinks"}, p.Permissions())
	assert.Equal(t, []string{"drinks-detail"}, p.Audience())

	p["aud"] = []interface{}{"drinks-detail", "https://fullstackcoffee.eu.auth0.com/userinfo"}
	assert.Len(t, p.Audience(), 2)
}

func TestPayload_MissingClaims(t *testing.T) {
	p := Payload{"username": 12, "permissions": "post:juice"}
	assert.Empty(t, p.Username())
	assert.Empty(t, p.Subject())
	assert.Nil(t, p.Permissions())
	assert.Nil(t, p.Audience())
}

func TestAsPayload(t *testing.T) {
	assert.Equal(t, Payload{"a": "b"}, AsPayload(map[string]interface{}{"a": "b"}))
	assert.Equal(t, Payload{"a": "b"}, AsPayload(Payload{"a": "b"}))
	assert.Nil(t, AsPayload([]interface{}{"post:juice"}))
	assert.Nil(t, AsPayload("juicepro"))
	assert.Nil(t, AsPayload(nil))
}

func TestInspection_Claims(t *testing.T) {
	i := &Inspection{Payload: map[string]interface{}{"username": "juicepro"}}
	assert.Equal(t, "juicepro", i.Claims().Username())

	i.Payload = float64(42)
	assert.Nil(t, i.Claims())
	assert.Empty(t, i.Claims().Username())
}
