package asset

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestIdentity_Equal(t *testing.T) {
	tests := []struct {
		a, b Identity
		want bool
	}{
		{NewIdentity(1, 6), NewIdentity(1, 6), true},
		{NewIdentity(1, 6), NewIdentity(2, 6), false},
		{NewIdentity(1, 6), NewIdentity(1, 8), false},
		{NewIdentity(1, 6), NewNamedIdentity(1, 6, "TOK", "Token"), true},
		{Identity{Decimals: 6}, NewIdentity(0, 6), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIdentity_String(t *testing.T) {
	tests := []struct {
		id   Identity
		want string
	}{
		{NewIdentity(42, 6), "asset#42"},
		{NewNamedIdentity(42, 6, "TOK", "Token"), "TOK#42"},
		{Identity{}, "asset#0"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestIdentity_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			json string
			want Identity
		}{
			{"numeric id", `{"id":7,"decimals":6}`, NewIdentity(7, 6)},
			{"string id", `{"id":"7","decimals":6}`, NewIdentity(7, 6)},
			{"named", `{"id":7,"decimals":6,"unitName":"TOK","displayName":"Token"}`, NewNamedIdentity(7, 6, "TOK", "Token")},
			{"beyond 64 bits", `{"id":18446744073709551616,"decimals":6}`, Identity{ID: bigFromString(t, "18446744073709551616"), Decimals: 6}},
			{"string beyond 64 bits", `{"id":"18446744073709551616","decimals":6}`, Identity{ID: bigFromString(t, "18446744073709551616"), Decimals: 6}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var got Identity
				if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
					t.Fatalf("json.Unmarshal(%q) failed: %v", tt.json, err)
				}
				if !got.Equal(tt.want) || got.UnitName != tt.want.UnitName || got.DisplayName != tt.want.DisplayName {
					t.Errorf("json.Unmarshal(%q) = %#v, want %#v", tt.json, got, tt.want)
				}
			})
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"id not a number": `{"id":"x","decimals":6}`,
			"not an object":   `17`,
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				var got Identity
				if err := json.Unmarshal([]byte(data), &got); err == nil {
					t.Errorf("json.Unmarshal(%q) did not fail", data)
				}
			})
		}
	})

	t.Run("round-trip", func(t *testing.T) {
		tests := []Identity{
			NewIdentity(7, 6),
			NewNamedIdentity(7, 6, "TOK", "Token"),
			{ID: bigFromString(t, "18446744073709551616"), Decimals: 18},
		}
		for _, id := range tests {
			data, err := json.Marshal(id)
			if err != nil {
				t.Fatalf("json.Marshal(%v) failed: %v", id, err)
			}
			var got Identity
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal(%q) failed: %v", data, err)
			}
			if !got.Equal(id) || got.UnitName != id.UnitName || got.DisplayName != id.DisplayName {
				t.Errorf("round-trip of %v through %q = %#v", id, data, got)
			}
		}
	})

	t.Run("omitempty", func(t *testing.T) {
		data, err := json.Marshal(NewIdentity(7, 6))
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		want := `{"id":7,"decimals":6}`
		if string(data) != want {
			t.Errorf("json.Marshal = %s, want %s", data, want)
		}
	})
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid big integer %q", s)
	}
	return n
}
