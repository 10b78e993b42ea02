// Package record defines the polymorphic record abstraction shared by the
// approval workflow: a closed set of record kinds, each backed by a store
// capable of reading and transitioning approval status.
package record

import "fmt"

// Kind identifies one of the record variants managed by the system.
// The set is closed; raw strings from the API boundary are parsed exactly
// once via ParseKind and never compared again downstream.
type Kind string

const (
	KindVehicleMaster     Kind = "vehicle_master"
	KindVehicleUndercover Kind = "vehicle_undercover"
	KindVehicleFictitious Kind = "vehicle_fictitious"
	KindDLOriginal        Kind = "dl_original"
	KindDLFictitious      Kind = "dl_fictitious"
	KindDocument          Kind = "document"
)

var allKinds = []Kind{
	KindVehicleMaster,
	KindVehicleUndercover,
	KindVehicleFictitious,
	KindDLOriginal,
	KindDLFictitious,
	KindDocument,
}

// ParseKind converts an API-supplied string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range allKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Kinds returns every registered record kind.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

func (k Kind) String() string {
	return string(k)
}

// IsVehicle reports whether the kind is one of the vehicle registration variants.
func (k Kind) IsVehicle() bool {
	return k == KindVehicleMaster || k == KindVehicleUndercover || k == KindVehicleFictitious
}

// IsLicense reports whether the kind is one of the driver license variants.
func (k Kind) IsLicense() bool {
	return k == KindDLOriginal || k == KindDLFictitious
}
