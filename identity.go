package asset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// Identity identifies an asset denomination.
// ID and Decimals together determine whether two amounts may be combined;
// UnitName and DisplayName are display-only and never participate in
// identity checks.
//
// ID may exceed the 64-bit range, hence big.Int.
// A nil ID is treated as id 0.
type Identity struct {
	ID          *big.Int // asset id, arbitrary width
	Decimals    int      // power-of-ten scale between microunits and standard units
	UnitName    string   // optional ticker symbol, e.g. "TOK"
	DisplayName string   // optional human-readable name
}

// NewIdentity returns an identity with the given id and scale.
// See also function [NewNamedIdentity].
func NewIdentity(id uint64, decimals int) Identity {
	return Identity{ID: new(big.Int).SetUint64(id), Decimals: decimals}
}

// NewNamedIdentity returns an identity with the given id, scale, and display names.
func NewNamedIdentity(id uint64, decimals int, unitName, displayName string) Identity {
	return Identity{
		ID:          new(big.Int).SetUint64(id),
		Decimals:    decimals,
		UnitName:    unitName,
		DisplayName: displayName,
	}
}

// id returns the asset id, substituting 0 for a nil ID.
func (i Identity) id() *big.Int {
	if i.ID == nil {
		return new(big.Int)
	}
	return i.ID
}

// clone returns a deep copy of the identity.
// Amounts snapshot their identity at construction, so callers mutating the
// original ID afterwards cannot alter an already constructed amount.
func (i Identity) clone() Identity {
	i.ID = new(big.Int).Set(i.id())
	return i
}

// Equal returns true if identities have the same id and scale.
// Display names are ignored.
func (i Identity) Equal(other Identity) bool {
	return i.id().Cmp(other.id()) == 0 && i.Decimals == other.Decimals
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (i Identity) String() string {
	if i.UnitName != "" {
		return fmt.Sprintf("%s#%v", i.UnitName, i.id())
	}
	return fmt.Sprintf("asset#%v", i.id())
}

type identityJSON struct {
	ID          json.RawMessage `json:"id"`
	Decimals    int             `json:"decimals"`
	UnitName    string          `json:"unitName,omitempty"`
	DisplayName string          `json:"displayName,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The id is emitted as a JSON number of arbitrary width.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (i Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(identityJSON{
		ID:          json.RawMessage(i.id().String()),
		Decimals:    i.Decimals,
		UnitName:    i.UnitName,
		DisplayName: i.DisplayName,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The id is accepted either as a JSON number or as a base-10 string.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (i *Identity) UnmarshalJSON(data []byte) error {
	var raw identityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling identity: %w", err)
	}
	id := new(big.Int)
	if len(raw.ID) > 0 {
		s := string(bytes.Trim(raw.ID, `"`))
		if _, ok := id.SetString(s, 10); !ok {
			return fmt.Errorf("unmarshaling identity: invalid id %q", s)
		}
	}
	*i = Identity{
		ID:          id,
		Decimals:    raw.Decimals,
		UnitName:    raw.UnitName,
		DisplayName: raw.DisplayName,
	}
	return nil
}
