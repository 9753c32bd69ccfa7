package models

import (
	"bytes"
	"encoding/json"
)

// Member is a search result entry.
type Member struct {
	ID      int         `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Address LooseString `json:"address,omitempty" yaml:"address,omitempty"`
	Phone   LooseString `json:"phone,omitempty" yaml:"phone,omitempty"`
	Image   LooseString `json:"image,omitempty" yaml:"image,omitempty"`
}

// MemberStatus is the member's current standing as reported upstream.
type MemberStatus struct {
	Name             LooseString `json:"name,omitempty" yaml:"name,omitempty"`
	CooperativeState LooseString `json:"cooperative_state" yaml:"cooperative_state"`
	ShiftType        LooseString `json:"shift_type" yaml:"shift_type"`
	IsCustomer       bool        `json:"customer" yaml:"customer"`
	IsWorkerMember   bool        `json:"is_worker_member,omitempty" yaml:"is_worker_member,omitempty"`
	IsUnsubscribed   bool        `json:"is_unsubscribed,omitempty" yaml:"is_unsubscribed,omitempty"`
}

// ResolvedShiftType maps the upstream shift type name to a ShiftType.
func (s MemberStatus) ResolvedShiftType() ShiftType {
	return ResolveShiftType(string(s.ShiftType))
}

// LooseString decodes a JSON string, treating null and false as empty.
// Numbers are kept as their literal text.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		*s = LooseString(data)
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = LooseString(v)
	return nil
}
