package ast

import "github.com/fxamacker/cbor/v2"

// MarshalNodeCBOR renders n as a CBOR-encoded tagged record, using the
// same field shape as MarshalNode, as a compact alternative encoding of
// the serialization contract.
func MarshalNodeCBOR(n Node) ([]byte, error) {
	return cbor.Marshal(ToMap(n))
}
