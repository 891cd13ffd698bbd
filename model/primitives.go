package model

import (
	"encoding/json"

	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// AccountID names an account, for example "alice.near". It is kept verbatim.
type AccountID string

// PublicKey is a key in its "<curve>:<base58>" text form.
type PublicKey string

// CryptoHash is a base58 encoded 32 byte hash.
type CryptoHash string

// Signature is a signature in its "<curve>:<base58>" text form.
type Signature string

// BlockHeight is the height of a block.
type BlockHeight uint64

// Gas is an amount of gas.
type Gas uint64

// ShardID identifies a shard.
type ShardID uint64

// Balance is an amount of yoctoNEAR carried as a decimal string.
type Balance = codec.Uint128

// StoreKey is a state key carried as base64.
type StoreKey []byte

// StoreValue is a state value carried as base64.
type StoreValue []byte

// field adapters shared by the schemas of this package
var (
	u32Field       = g.SchemaOf(codec.UintOf[uint32]())
	u64Field       = g.SchemaOf(codec.UintOf[uint64]())
	gasField       = g.SchemaOf(codec.UintOf[Gas]())
	shardField     = g.SchemaOf(codec.UintOf[ShardID]())
	heightField    = g.SchemaOf(codec.UintOf[BlockHeight]())
	balanceField   = g.SchemaOf(codec.U128())
	stringField    = g.SchemaOf(codec.StringOf[string]())
	boolField      = g.SchemaOf(codec.Bool())
	accountField   = g.SchemaOf(codec.StringOf[AccountID]())
	publicKeyField = g.SchemaOf(codec.StringOf[PublicKey]())
	hashField      = g.SchemaOf(codec.StringOf[CryptoHash]())
	signatureField = g.SchemaOf(codec.StringOf[Signature]())
	base64Field    = g.SchemaOf(codec.Base64Of[[]byte]())
	opaqueField    = g.SchemaOf(g.Opaque())
	stringsField   = g.SchemaOf(g.ArrayOf(codec.StringOf[string]()))
	hashesField    = g.SchemaOf(g.ArrayOf(codec.StringOf[CryptoHash]()))
)

// json0 is the wire zero used as a default for numeric fields.
var json0 = json.Number("0")
