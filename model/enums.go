package model

import g "github.com/reoring/rpcskema/dsl"

// Finality selects how final a block must be to be used for a query.
type Finality string

const (
	FinalityOptimistic Finality = "OPTIMISTIC"
	FinalityDoomslug   Finality = "DOOMSLUG"
	FinalityFinal      Finality = "FINAL"
)

var FinalitySchema = g.MustEnum("Finality",
	g.Tag(FinalityOptimistic, "optimistic"),
	g.Tag(FinalityDoomslug, "near-final"),
	g.Tag(FinalityFinal, "final"),
)

// SyncCheckpoint names a block relative to the node's sync state.
type SyncCheckpoint string

const (
	SyncCheckpointGenesis           SyncCheckpoint = "GENESIS"
	SyncCheckpointEarliestAvailable SyncCheckpoint = "EARLIEST_AVAILABLE"
)

var SyncCheckpointSchema = g.MustEnum("SyncCheckpoint",
	g.Tag(SyncCheckpointGenesis, "genesis"),
	g.Tag(SyncCheckpointEarliestAvailable, "earliest_available"),
)

// TxExecutionStatus is how far a transaction got before the node answered.
type TxExecutionStatus string

const (
	TxNone               TxExecutionStatus = "NONE"
	TxIncluded           TxExecutionStatus = "INCLUDED"
	TxExecutedOptimistic TxExecutionStatus = "EXECUTED_OPTIMISTIC"
	TxIncludedFinal      TxExecutionStatus = "INCLUDED_FINAL"
	TxExecuted           TxExecutionStatus = "EXECUTED"
	TxFinal              TxExecutionStatus = "FINAL"
)

var TxExecutionStatusSchema = g.MustEnum("TxExecutionStatus",
	g.Tag(TxNone, "NONE"),
	g.Tag(TxIncluded, "INCLUDED"),
	g.Tag(TxExecutedOptimistic, "EXECUTED_OPTIMISTIC"),
	g.Tag(TxIncludedFinal, "INCLUDED_FINAL"),
	g.Tag(TxExecuted, "EXECUTED"),
	g.Tag(TxFinal, "FINAL"),
)

// Direction is the side of a merkle path item.
type Direction string

const (
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

var DirectionSchema = g.MustEnum("Direction",
	g.Tag(DirectionLeft, "Left"),
	g.Tag(DirectionRight, "Right"),
)
