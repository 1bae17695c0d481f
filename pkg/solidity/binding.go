package solidity

import (
	"fmt"

	"github.com/veverse/contractgen/pkg/sanitize"
	"github.com/veverse/contractgen/pkg/spec"
)

// SpecBinding adapts a validated ContractSpecification to the rendering
// engine, applying string-literal escaping at the emission boundary. The
// value map is computed once so rendering stays allocation-light and
// deterministic.
type SpecBinding struct {
	spec   *spec.ContractSpecification
	values map[string]string
}

// NewBinding builds the binding for a validated specification.
func NewBinding(s *spec.ContractSpecification) *SpecBinding {
	return &SpecBinding{
		spec: s,
		values: map[string]string{
			"contract":     s.ContractIdentifier,
			"name":         sanitize.EscapeString(s.Name),
			"symbol":       s.Symbol,
			"description":  s.Description,
			"totalSupply":  s.TotalSupply.Dec(),
			"price":        s.MintingPrice.Dec(),
			"tokenURIBase": sanitize.EscapeString(s.TokenURIBase),
			"paymentAsset": s.AssetAddress.Hex(),
		},
	}
}

// Value implements render.Binding.
func (b *SpecBinding) Value(key string) (string, bool) {
	value, ok := b.values[key]
	return value, ok
}

// Predicate implements render.Binding.
func (b *SpecBinding) Predicate(key string) (bool, error) {
	switch key {
	case "nativePayment":
		return b.spec.NativePayment(), nil
	case "tokenPayment":
		return !b.spec.NativePayment(), nil
	case "pausable":
		return b.spec.Pausable, nil
	case "adjustablePrice":
		return b.spec.OwnerCanSetPrice, nil
	default:
		return false, fmt.Errorf("solidity: unknown predicate %q", key)
	}
}
