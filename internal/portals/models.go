package portals

import (
	"encoding/json"
	"fmt"
)

// Meta is the device description metadata. The API carries it as a JSON
// encoded string inside the description object.
type Meta map[string]any

func (m Meta) MarshalJSON() ([]byte, error) {
	if m == nil {
		return json.Marshal("{}")
	}

	encoded, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}

	return json.Marshal(string(encoded))
}

func (m *Meta) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = nil
		return nil
	}

	var decoded map[string]any

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		if s == "" {
			*m = nil
			return nil
		}

		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return fmt.Errorf("failed to decode meta string: %w", err)
		}
	} else if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

type Description struct {
	Name      string          `json:"name"`
	Meta      Meta            `json:"meta"`
	Public    bool            `json:"public"`
	Limits    json.RawMessage `json:"limits,omitempty"`
	Locked    bool            `json:"locked,omitempty"`
	Subscribe bool            `json:"subscribe,omitempty"`
}

type DeviceInfo struct {
	Description Description     `json:"description"`
	Basic       json.RawMessage `json:"basic,omitempty"`
	Key         string          `json:"key,omitempty"`
	Aliases     json.RawMessage `json:"aliases,omitempty"`
}

type Device struct {
	RID    string     `json:"rid,omitempty"`
	Vendor string     `json:"vendor,omitempty"`
	Model  string     `json:"model,omitempty"`
	SN     string     `json:"sn,omitempty"`
	Type   string     `json:"type,omitempty"`
	Info   DeviceInfo `json:"info"`
}

type newDevice struct {
	Model  string `json:"model"`
	Vendor string `json:"vendor"`
	SN     string `json:"sn"`
	Type   string `json:"type"`
}

// PortalSummary is one entry of the authenticated user's portal list.
type PortalSummary struct {
	Name        string      `json:"PortalName"`
	ID          json.Number `json:"PortalID"`
	RID         string      `json:"PortalRID"`
	UserEmail   string      `json:"UserEmail"`
	Description string      `json:"Description"`
}

// Portal is a full portal document. It is kept loose so that an update
// writes back every field the API returned.
type Portal map[string]any

type Account struct {
	ID       json.Number `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"fullName,omitempty"`
}

type ObjectID struct {
	ID   json.Number `json:"id"`
	Type string      `json:"type"`
}

// Permission grants access to an object, e.g. {"access":"d_u_list","oid":{"id":"1576946496","type":"Domain"}}.
type Permission struct {
	Access string   `json:"access"`
	OID    ObjectID `json:"oid"`
}
