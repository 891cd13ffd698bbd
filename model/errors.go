package model

import (
	"github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// ErrorCause explains an RPC error. Causes this package does not know are kept
// as OtherCause.
type ErrorCause interface{ isErrorCause() }

type AccountErrorInfo struct {
	RequestedAccountID AccountID   `json:"requested_account_id"`
	BlockHeight        BlockHeight `json:"block_height"`
	BlockHash          CryptoHash  `json:"block_hash"`
}

type MessageInfo struct {
	ErrorMessage string `json:"error_message"`
}

type UnknownBlockCause struct {
	Info rpcskema.RawValue `json:"info"`
}

type UnknownAccountCause struct {
	Info AccountErrorInfo `json:"info"`
}

type InvalidAccountCause struct {
	Info AccountErrorInfo `json:"info"`
}

type UnknownTransactionCause struct {
	Info rpcskema.RawValue `json:"info"`
}

type TimeoutErrorCause struct{}

type InternalErrorCause struct {
	Info MessageInfo `json:"info"`
}

type ParseErrorCause struct {
	Info MessageInfo `json:"info"`
}

// OtherCause is any cause not listed above, kept verbatim.
type OtherCause struct {
	Name string            `json:"name"`
	Info rpcskema.RawValue `json:"info"`
}

func (UnknownBlockCause) isErrorCause()       {}
func (UnknownAccountCause) isErrorCause()     {}
func (InvalidAccountCause) isErrorCause()     {}
func (UnknownTransactionCause) isErrorCause() {}
func (TimeoutErrorCause) isErrorCause()       {}
func (InternalErrorCause) isErrorCause()      {}
func (ParseErrorCause) isErrorCause()         {}
func (OtherCause) isErrorCause()              {}

var AccountErrorInfoSchema = g.ObjectOf[AccountErrorInfo]("AccountErrorInfo").
	Field("requested_account_id", accountField).Required().
	Field("block_height", heightField).Required().
	Field("block_hash", hashField).Required().
	MustBuild()

var MessageInfoSchema = g.ObjectOf[MessageInfo]("MessageInfo").
	Field("error_message", stringField).Required().
	MustBuild()

var (
	accountInfoField = g.SchemaOf[AccountErrorInfo](AccountErrorInfoSchema)
	messageInfoField = g.SchemaOf[MessageInfo](MessageInfoSchema)
)

var ErrorCauseSchema = g.UnionOf[ErrorCause]("ErrorCause").
	Tagged("name").
	OneOf(
		g.Case[ErrorCause]("UNKNOWN_BLOCK", g.ObjectOf[UnknownBlockCause]("UnknownBlockCause").
			Field("info", opaqueField).
			MustBuild()),
		g.Case[ErrorCause]("UNKNOWN_ACCOUNT", g.ObjectOf[UnknownAccountCause]("UnknownAccountCause").
			Field("info", accountInfoField).Required().
			MustBuild()),
		g.Case[ErrorCause]("INVALID_ACCOUNT", g.ObjectOf[InvalidAccountCause]("InvalidAccountCause").
			Field("info", accountInfoField).Required().
			MustBuild()),
		g.Case[ErrorCause]("UNKNOWN_TRANSACTION", g.ObjectOf[UnknownTransactionCause]("UnknownTransactionCause").
			Field("info", opaqueField).
			MustBuild()),
		g.Case[ErrorCause]("TIMEOUT_ERROR", g.ObjectOf[TimeoutErrorCause]("TimeoutErrorCause").MustBuild()),
		g.Case[ErrorCause]("INTERNAL_ERROR", g.ObjectOf[InternalErrorCause]("InternalErrorCause").
			Field("info", messageInfoField).Required().
			MustBuild()),
		g.Case[ErrorCause]("PARSE_ERROR", g.ObjectOf[ParseErrorCause]("ParseErrorCause").
			Field("info", messageInfoField).Required().
			MustBuild()),
	).
	Fallback(g.Case[ErrorCause]("Other", g.ObjectOf[OtherCause]("OtherCause").
		Field("name", stringField).Default("").
		Field("info", opaqueField).
		MustBuild())).
	MustBuild()

// RpcError is the error member of a JSON-RPC response.
type RpcError struct {
	Name    string            `json:"name"`
	Cause   ErrorCause        `json:"cause"`
	Code    int64             `json:"code"`
	Message string            `json:"message"`
	Data    rpcskema.RawValue `json:"data"`
}

var RpcErrorSchema = g.ObjectOf[RpcError]("RpcError").
	Field("name", stringField).Default("").
	Field("cause", g.SchemaOf(g.Nullable[ErrorCause](ErrorCauseSchema))).
	Field("code", g.SchemaOf(codec.IntOf[int64]())).Required().
	Field("message", stringField).Required().
	Field("data", opaqueField).
	MustBuild()
