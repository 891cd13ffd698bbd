package model

import (
	"time"

	"github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

type Version struct {
	Version      string `json:"version"`
	Build        string `json:"build"`
	Commit       string `json:"commit"`
	RustcVersion string `json:"rustc_version"`
}

var VersionSchema = g.ObjectOf[Version]("Version").
	Field("version", stringField).Required().
	Field("build", stringField).Required().
	Field("commit", stringField).Default("").
	Field("rustc_version", stringField).Default("").
	MustBuild()

type SyncInfo struct {
	LatestBlockHash     CryptoHash   `json:"latest_block_hash"`
	LatestBlockHeight   BlockHeight  `json:"latest_block_height"`
	LatestStateRoot     CryptoHash   `json:"latest_state_root"`
	LatestBlockTime     time.Time    `json:"latest_block_time"`
	Syncing             bool         `json:"syncing"`
	EarliestBlockHash   *CryptoHash  `json:"earliest_block_hash"`
	EarliestBlockHeight *BlockHeight `json:"earliest_block_height"`
	EarliestBlockTime   *time.Time   `json:"earliest_block_time"`
	EpochID             *CryptoHash  `json:"epoch_id"`
	EpochStartHeight    *BlockHeight `json:"epoch_start_height"`
}

var (
	optionalHash   = g.SchemaOf(g.Optional(codec.StringOf[CryptoHash]()))
	optionalHeight = g.SchemaOf(g.Optional(codec.UintOf[BlockHeight]()))
)

var SyncInfoSchema = g.ObjectOf[SyncInfo]("StatusSyncInfo").
	Field("latest_block_hash", hashField).Required().
	Field("latest_block_height", heightField).Required().
	Field("latest_state_root", hashField).Required().
	Field("latest_block_time", g.SchemaOf(codec.RFC3339())).Required().
	Field("syncing", boolField).Required().
	Field("earliest_block_hash", optionalHash).
	Field("earliest_block_height", optionalHeight).
	Field("earliest_block_time", g.SchemaOf(g.Optional(codec.RFC3339()))).
	Field("epoch_id", optionalHash).
	Field("epoch_start_height", optionalHeight).
	MustBuild()

type ValidatorInfo struct {
	AccountID AccountID `json:"account_id"`
}

var ValidatorInfoSchema = g.ObjectOf[ValidatorInfo]("ValidatorInfo").
	Field("account_id", accountField).Required().
	MustBuild()

// RpcStatusResponse is the result of the "status" method.
type RpcStatusResponse struct {
	ChainID               string            `json:"chain_id"`
	GenesisHash           CryptoHash        `json:"genesis_hash"`
	LatestProtocolVersion uint32            `json:"latest_protocol_version"`
	ProtocolVersion       uint32            `json:"protocol_version"`
	RPCAddr               *string           `json:"rpc_addr"`
	SyncInfo              SyncInfo          `json:"sync_info"`
	ValidatorAccountID    *AccountID        `json:"validator_account_id"`
	ValidatorPublicKey    *PublicKey        `json:"validator_public_key"`
	Validators            []ValidatorInfo   `json:"validators"`
	Version               Version           `json:"version"`
	UptimeSec             int64             `json:"uptime_sec"`
	NodeKey               *PublicKey        `json:"node_key"`
	NodePublicKey         PublicKey         `json:"node_public_key"`
	DetailedDebugStatus   rpcskema.RawValue `json:"detailed_debug_status"`
}

var RpcStatusResponseSchema = g.ObjectOf[RpcStatusResponse]("RpcStatusResponse").
	Field("chain_id", stringField).Required().
	Field("genesis_hash", hashField).Required().
	Field("latest_protocol_version", u32Field).Required().
	Field("protocol_version", u32Field).Required().
	Field("rpc_addr", g.SchemaOf(g.Optional(codec.StringOf[string]()))).
	Field("sync_info", g.SchemaOf[SyncInfo](SyncInfoSchema)).Required().
	Field("validator_account_id", g.SchemaOf(g.Optional(codec.StringOf[AccountID]()))).
	Field("validator_public_key", g.SchemaOf(g.Optional(codec.StringOf[PublicKey]()))).
	Field("validators", g.SchemaOf(g.ArrayOf[ValidatorInfo](ValidatorInfoSchema))).Required().
	Field("version", g.SchemaOf[Version](VersionSchema)).Required().
	Field("uptime_sec", g.SchemaOf(codec.IntOf[int64]())).Required().
	Field("node_key", g.SchemaOf(g.Optional(codec.StringOf[PublicKey]()))).
	Field("node_public_key", publicKeyField).Required().
	Field("detailed_debug_status", opaqueField).
	MustBuild()

// RpcGasPriceRequest is the params object of the "gas_price" method. A nil
// BlockID asks for the latest block.
type RpcGasPriceRequest struct {
	BlockID BlockID `json:"block_id"`
}

var RpcGasPriceRequestSchema = g.ObjectOf[RpcGasPriceRequest]("RpcGasPriceRequest").
	Field("block_id", g.SchemaOf(g.Nullable[BlockID](BlockIDSchema))).
	MustBuild()

// RpcGasPriceResponse is the result of the "gas_price" method.
type RpcGasPriceResponse struct {
	GasPrice Balance `json:"gas_price"`
}

var RpcGasPriceResponseSchema = g.ObjectOf[RpcGasPriceResponse]("RpcGasPriceResponse").
	Field("gas_price", balanceField).Required().
	MustBuild()
