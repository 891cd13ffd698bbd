// Package model describes the typed JSON-RPC surface of a blockchain node:
// request parameters, result views, enums and the unions between them.
//
// Every type has a schema (FinalitySchema, BlockViewSchema, ...) and is listed
// in Registry under its wire name. Registry is built when the package is
// initialized and never changes afterwards, so it can be shared by concurrent
// callers.
//
//	v, err := model.Registry.Decode(ctx, "BlockView", data)
//	block := v.(model.BlockView)
package model
