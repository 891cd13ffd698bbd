package model

import (
	"time"

	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// BlockID is a block height or a block hash.
type BlockID interface{ isBlockID() }

func (BlockHeight) isBlockID() {}
func (CryptoHash) isBlockID()  {}

var BlockIDSchema = g.UnionOf[BlockID]("BlockId").
	OneOf(
		g.Case[BlockID]("height", codec.UintOf[BlockHeight]()),
		g.Case[BlockID]("hash", codec.StringOf[CryptoHash]()),
	).
	MustBuild()

// BlockReference selects the block a request runs against.
type BlockReference interface{ isBlockReference() }

type BlockIDRef struct {
	BlockID BlockID `json:"block_id"`
}

type FinalityRef struct {
	Finality Finality `json:"finality"`
}

type SyncCheckpointRef struct {
	SyncCheckpoint SyncCheckpoint `json:"sync_checkpoint"`
}

func (BlockIDRef) isBlockReference()        {}
func (FinalityRef) isBlockReference()       {}
func (SyncCheckpointRef) isBlockReference() {}

var BlockReferenceSchema = g.UnionOf[BlockReference]("BlockReference").
	OneOf(
		g.Case[BlockReference]("block_id", g.ObjectOf[BlockIDRef]("BlockIdRef").
			Field("block_id", g.SchemaOf[BlockID](BlockIDSchema)).Required().
			MustBuild()),
		g.Case[BlockReference]("finality", g.ObjectOf[FinalityRef]("FinalityRef").
			Field("finality", g.SchemaOf[Finality](FinalitySchema)).Required().
			MustBuild()),
		g.Case[BlockReference]("sync_checkpoint", g.ObjectOf[SyncCheckpointRef]("SyncCheckpointRef").
			Field("sync_checkpoint", g.SchemaOf[SyncCheckpoint](SyncCheckpointSchema)).Required().
			MustBuild()),
	).
	MustBuild()

// ValidatorStakeView is a versioned validator stake record.
type ValidatorStakeView interface{ isValidatorStakeView() }

type ValidatorStakeViewV1 struct {
	AccountID AccountID `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
	Stake     Balance   `json:"stake"`
}

func (ValidatorStakeViewV1) isValidatorStakeView() {}

var ValidatorStakeViewSchema = g.UnionOf[ValidatorStakeView]("ValidatorStakeView").
	Tagged("validator_stake_struct_version").
	OneOf(
		g.Case[ValidatorStakeView]("V1", g.ObjectOf[ValidatorStakeViewV1]("ValidatorStakeViewV1").
			Field("account_id", accountField).Required().
			Field("public_key", publicKeyField).Required().
			Field("stake", balanceField).Required().
			MustBuild()),
	).
	MustBuild()

var validatorProposalsField = g.SchemaOf(g.ArrayOf[ValidatorStakeView](ValidatorStakeViewSchema))

type BlockHeaderView struct {
	Height                BlockHeight          `json:"height"`
	PrevHeight            *BlockHeight         `json:"prev_height"`
	EpochID               CryptoHash           `json:"epoch_id"`
	NextEpochID           CryptoHash           `json:"next_epoch_id"`
	Hash                  CryptoHash           `json:"hash"`
	PrevHash              CryptoHash           `json:"prev_hash"`
	PrevStateRoot         CryptoHash           `json:"prev_state_root"`
	ChunkReceiptsRoot     CryptoHash           `json:"chunk_receipts_root"`
	ChunkHeadersRoot      CryptoHash           `json:"chunk_headers_root"`
	ChunkTxRoot           CryptoHash           `json:"chunk_tx_root"`
	OutcomeRoot           CryptoHash           `json:"outcome_root"`
	ChunksIncluded        uint64               `json:"chunks_included"`
	ChallengesRoot        CryptoHash           `json:"challenges_root"`
	Timestamp             uint64               `json:"timestamp"`
	TimestampNanosec      time.Time            `json:"timestamp_nanosec"`
	RandomValue           CryptoHash           `json:"random_value"`
	ValidatorProposals    []ValidatorStakeView `json:"validator_proposals"`
	ChunkMask             []bool               `json:"chunk_mask"`
	GasPrice              Balance              `json:"gas_price"`
	BlockOrdinal          *uint64              `json:"block_ordinal"`
	RentPaid              Balance              `json:"rent_paid"`
	ValidatorReward       Balance              `json:"validator_reward"`
	TotalSupply           Balance              `json:"total_supply"`
	LastFinalBlock        CryptoHash           `json:"last_final_block"`
	LastDSFinalBlock      CryptoHash           `json:"last_ds_final_block"`
	NextBPHash            CryptoHash           `json:"next_bp_hash"`
	BlockMerkleRoot       CryptoHash           `json:"block_merkle_root"`
	Approvals             []*Signature         `json:"approvals"`
	Signature             Signature            `json:"signature"`
	LatestProtocolVersion uint32               `json:"latest_protocol_version"`
}

var BlockHeaderViewSchema = g.ObjectOf[BlockHeaderView]("BlockHeaderView").
	Field("height", heightField).Required().
	Field("prev_height", g.SchemaOf(g.Optional(codec.UintOf[BlockHeight]()))).
	Field("epoch_id", hashField).Required().
	Field("next_epoch_id", hashField).Required().
	Field("hash", hashField).Required().
	Field("prev_hash", hashField).Required().
	Field("prev_state_root", hashField).Required().
	Field("chunk_receipts_root", hashField).Required().
	Field("chunk_headers_root", hashField).Required().
	Field("chunk_tx_root", hashField).Required().
	Field("outcome_root", hashField).Required().
	Field("chunks_included", u64Field).Required().
	Field("challenges_root", hashField).Required().
	Field("timestamp", u64Field).Required().
	Field("timestamp_nanosec", g.SchemaOf(codec.TimestampNanos())).Required().
	Field("random_value", hashField).Required().
	Field("validator_proposals", validatorProposalsField).Required().
	Field("chunk_mask", g.SchemaOf(g.ArrayOf(codec.Bool()))).Required().
	Field("gas_price", balanceField).Required().
	Field("block_ordinal", g.SchemaOf(g.Optional(codec.UintOf[uint64]()))).
	Field("rent_paid", balanceField).Default("0").
	Field("validator_reward", balanceField).Default("0").
	Field("total_supply", balanceField).Required().
	Field("last_final_block", hashField).Required().
	Field("last_ds_final_block", hashField).Required().
	Field("next_bp_hash", hashField).Required().
	Field("block_merkle_root", hashField).Required().
	Field("approvals", g.SchemaOf(g.ArrayOf(g.Optional(codec.StringOf[Signature]())))).Required().
	Field("signature", signatureField).Required().
	Field("latest_protocol_version", u32Field).Required().
	MustBuild()

type ChunkHeaderView struct {
	ChunkHash            CryptoHash           `json:"chunk_hash"`
	PrevBlockHash        CryptoHash           `json:"prev_block_hash"`
	OutcomeRoot          CryptoHash           `json:"outcome_root"`
	PrevStateRoot        CryptoHash           `json:"prev_state_root"`
	EncodedMerkleRoot    CryptoHash           `json:"encoded_merkle_root"`
	EncodedLength        uint64               `json:"encoded_length"`
	HeightCreated        BlockHeight          `json:"height_created"`
	HeightIncluded       BlockHeight          `json:"height_included"`
	ShardID              ShardID              `json:"shard_id"`
	GasUsed              Gas                  `json:"gas_used"`
	GasLimit             Gas                  `json:"gas_limit"`
	RentPaid             Balance              `json:"rent_paid"`
	ValidatorReward      Balance              `json:"validator_reward"`
	BalanceBurnt         Balance              `json:"balance_burnt"`
	OutgoingReceiptsRoot CryptoHash           `json:"outgoing_receipts_root"`
	TxRoot               CryptoHash           `json:"tx_root"`
	ValidatorProposals   []ValidatorStakeView `json:"validator_proposals"`
	Signature            Signature            `json:"signature"`
}

var ChunkHeaderViewSchema = g.ObjectOf[ChunkHeaderView]("ChunkHeaderView").
	Field("chunk_hash", hashField).Required().
	Field("prev_block_hash", hashField).Required().
	Field("outcome_root", hashField).Required().
	Field("prev_state_root", hashField).Required().
	Field("encoded_merkle_root", hashField).Required().
	Field("encoded_length", u64Field).Required().
	Field("height_created", heightField).Required().
	Field("height_included", heightField).Required().
	Field("shard_id", shardField).Required().
	Field("gas_used", gasField).Required().
	Field("gas_limit", gasField).Required().
	Field("rent_paid", balanceField).Default("0").
	Field("validator_reward", balanceField).Default("0").
	Field("balance_burnt", balanceField).Required().
	Field("outgoing_receipts_root", hashField).Required().
	Field("tx_root", hashField).Required().
	Field("validator_proposals", validatorProposalsField).Required().
	Field("signature", signatureField).Required().
	MustBuild()

type BlockView struct {
	Author AccountID         `json:"author"`
	Header BlockHeaderView   `json:"header"`
	Chunks []ChunkHeaderView `json:"chunks"`
}

var BlockViewSchema = g.ObjectOf[BlockView]("BlockView").
	Field("author", accountField).Required().
	Field("header", g.SchemaOf[BlockHeaderView](BlockHeaderViewSchema)).Required().
	Field("chunks", g.SchemaOf(g.ArrayOf[ChunkHeaderView](ChunkHeaderViewSchema))).Required().
	MustBuild()

// RpcBlockRequest is the params object of the "block" method.
type RpcBlockRequest struct {
	BlockReference BlockReference
}

var RpcBlockRequestSchema = g.ObjectOf[RpcBlockRequest]("RpcBlockRequest").
	Embed("BlockReference", g.SchemaOf[BlockReference](BlockReferenceSchema)).
	MustBuild()
