// Package dsl builds rpcskema schemas for enums, Go structs and discriminated
// unions.
//
// Objects are bound to a struct type and list their fields in wire order:
//
//	type Header struct {
//		Height uint64   `json:"height"`
//		Reward Uint128  `json:"validator_reward"`
//	}
//
//	HeaderSchema := g.ObjectOf[Header]("Header").
//		Field("height", g.SchemaOf(codec.UintOf[uint64]())).Required().
//		Field("validator_reward", g.SchemaOf(codec.U128())).Default("0").
//		MustBuild()
//
// Decode walks the declared fields: absent fields take their default, absent
// required fields report "required" and unknown keys are dropped unless
// UnknownStrict is set. Encode emits every declared field in declaration order.
//
// Enums connect an in-model value to its wire tag through a table that is
// checked when the enum is built:
//
//	Finality := g.MustEnum("Finality",
//		g.Tag(FinalityOptimistic, "optimistic"),
//		g.Tag(FinalityFinal, "final"),
//	)
//
// Unions are sealed interfaces. A union is either structural (variants are
// tried in declaration order and the first match wins), internally tagged by a
// key, or externally tagged ({"Variant": payload} or a bare "Variant" string):
//
//	BlockIDSchema := g.UnionOf[BlockID]("BlockId").
//		OneOf(
//			g.Case[BlockID]("height", codec.UintOf[BlockHeight]()),
//			g.Case[BlockID]("hash", codec.StringOf[CryptoHash]()),
//		).
//		MustBuild()
package dsl
