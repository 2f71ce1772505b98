// Package ops defines the Graphene operation set and its binary
// serialization. Every operation implements the Operation interface:
// it names its numeric id and writes its body through a wire.Encoder
// in the exact field order the chain hashes and signs.
//
// The encoding follows Graphene conventions throughout: object ids
// travel as bare instance varints, flat_sets and maps are emitted in
// sorted order, static_variants carry a uvarint tag before the body,
// and extension blocks list only the populated slots, each prefixed
// with its slot index.
//
// Operations whose serializer is unknown can still round-trip inside a
// transaction via OpaqueOperation, which frames raw bytes under an
// explicit id.
package ops
