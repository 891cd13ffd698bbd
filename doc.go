// Package rpcskema is the typed schema and serialization layer for a blockchain
// node's JSON-RPC surface.
//
// It provides:
//
// - Schema[T]: bidirectional mapping between a generic JSON tree and a typed Go value (Parse/Encode)
// - A stable error model via Issues (JSON Pointer, code, message) that callers match by kind
// - Ordered encode trees (Object) so the wire output is deterministic
// - RawValue, the explicit "any JSON" escape hatch for open-ended payloads
// - Registry, an immutable table of named types built once at startup
//
// Design policy:
// - Keep the core APIs in the root package; scalar codecs live under codec/, composite
//   schemas (enums, objects, unions) under dsl/, and the concrete RPC model under model/.
// - Decoding never mutates shared state; the only shared data is the read-only Registry.
//
// Typical usage:
//
//	v, err := rpcskema.Unmarshal(ctx, model.BlockViewSchema, data)
//	wire, err := rpcskema.Marshal(ctx, model.BlockViewSchema, v)
//
//	raw, err := model.Registry.Decode(ctx, "BlockView", data)
package rpcskema
