package model

import (
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// QueryRequest is the request_type specific part of a query.
type QueryRequest interface{ isQueryRequest() }

type ViewAccount struct {
	AccountID AccountID `json:"account_id"`
}

type ViewCode struct {
	AccountID AccountID `json:"account_id"`
}

type ViewState struct {
	AccountID    AccountID `json:"account_id"`
	Prefix       StoreKey  `json:"prefix_base64"`
	IncludeProof bool      `json:"include_proof"`
}

type ViewAccessKey struct {
	AccountID AccountID `json:"account_id"`
	PublicKey PublicKey `json:"public_key"`
}

type ViewAccessKeyList struct {
	AccountID AccountID `json:"account_id"`
}

type CallFunction struct {
	AccountID  AccountID `json:"account_id"`
	MethodName string    `json:"method_name"`
	Args       []byte    `json:"args_base64"`
}

func (ViewAccount) isQueryRequest()       {}
func (ViewCode) isQueryRequest()          {}
func (ViewState) isQueryRequest()         {}
func (ViewAccessKey) isQueryRequest()     {}
func (ViewAccessKeyList) isQueryRequest() {}
func (CallFunction) isQueryRequest()      {}

var QueryRequestSchema = g.UnionOf[QueryRequest]("QueryRequest").
	Tagged("request_type").
	OneOf(
		g.Case[QueryRequest]("view_account", g.ObjectOf[ViewAccount]("ViewAccount").
			Field("account_id", accountField).Required().
			MustBuild()),
		g.Case[QueryRequest]("view_code", g.ObjectOf[ViewCode]("ViewCode").
			Field("account_id", accountField).Required().
			MustBuild()),
		g.Case[QueryRequest]("view_state", g.ObjectOf[ViewState]("ViewState").
			Field("account_id", accountField).Required().
			Field("prefix_base64", g.SchemaOf(codec.Base64Of[StoreKey]())).Required().
			Field("include_proof", boolField).Default(false).
			MustBuild()),
		g.Case[QueryRequest]("view_access_key", g.ObjectOf[ViewAccessKey]("ViewAccessKey").
			Field("account_id", accountField).Required().
			Field("public_key", publicKeyField).Required().
			MustBuild()),
		g.Case[QueryRequest]("view_access_key_list", g.ObjectOf[ViewAccessKeyList]("ViewAccessKeyList").
			Field("account_id", accountField).Required().
			MustBuild()),
		g.Case[QueryRequest]("call_function", g.ObjectOf[CallFunction]("CallFunction").
			Field("account_id", accountField).Required().
			Field("method_name", stringField).Required().
			Field("args_base64", base64Field).Required().
			MustBuild()),
	).
	MustBuild()

// RpcQueryRequest is the params object of the "query" method: a block
// reference and a request flattened into one object.
type RpcQueryRequest struct {
	BlockReference BlockReference
	Request        QueryRequest
}

var RpcQueryRequestSchema = g.ObjectOf[RpcQueryRequest]("RpcQueryRequest").
	Embed("BlockReference", g.SchemaOf[BlockReference](BlockReferenceSchema)).
	Embed("Request", g.SchemaOf[QueryRequest](QueryRequestSchema)).
	MustBuild()

// QueryResponseKind is the request specific part of a query result.
type QueryResponseKind interface{ isQueryResponseKind() }

type AccountView struct {
	Amount        Balance     `json:"amount"`
	Locked        Balance     `json:"locked"`
	CodeHash      CryptoHash  `json:"code_hash"`
	StorageUsage  uint64      `json:"storage_usage"`
	StoragePaidAt BlockHeight `json:"storage_paid_at"`
}

type ContractCodeView struct {
	Code []byte     `json:"code_base64"`
	Hash CryptoHash `json:"hash"`
}

type StateItem struct {
	Key   StoreKey   `json:"key"`
	Value StoreValue `json:"value"`
}

type ViewStateResult struct {
	Values []StateItem `json:"values"`
	Proof  []string    `json:"proof"`
}

type CallResult struct {
	Result []byte   `json:"result"`
	Logs   []string `json:"logs"`
}

func (AccountView) isQueryResponseKind()      {}
func (ContractCodeView) isQueryResponseKind() {}
func (ViewStateResult) isQueryResponseKind()  {}
func (CallResult) isQueryResponseKind()       {}
func (AccessKeyView) isQueryResponseKind()    {}
func (AccessKeyList) isQueryResponseKind()    {}

var AccountViewSchema = g.ObjectOf[AccountView]("AccountView").
	Field("amount", balanceField).Required().
	Field("locked", balanceField).Required().
	Field("code_hash", hashField).Required().
	Field("storage_usage", u64Field).Required().
	Field("storage_paid_at", heightField).Default(json0).
	MustBuild()

var ContractCodeViewSchema = g.ObjectOf[ContractCodeView]("ContractCodeView").
	Field("code_base64", base64Field).Required().
	Field("hash", hashField).Required().
	MustBuild()

var StateItemSchema = g.ObjectOf[StateItem]("StateItem").
	Field("key", g.SchemaOf(codec.Base64Of[StoreKey]())).Required().
	Field("value", g.SchemaOf(codec.Base64Of[StoreValue]())).Required().
	MustBuild()

var ViewStateResultSchema = g.ObjectOf[ViewStateResult]("ViewStateResult").
	Field("values", g.SchemaOf(g.ArrayOf[StateItem](StateItemSchema))).Required().
	Field("proof", stringsField).Default([]any{}).
	MustBuild()

var CallResultSchema = g.ObjectOf[CallResult]("CallResult").
	Field("result", g.SchemaOf(codec.ByteArrayOf[[]byte]())).Required().
	Field("logs", stringsField).Required().
	MustBuild()

// Variants are tried in this order; their required fields do not overlap.
var QueryResponseKindSchema = g.UnionOf[QueryResponseKind]("QueryResponseKind").
	OneOf(
		g.Case[QueryResponseKind]("AccountView", AccountViewSchema),
		g.Case[QueryResponseKind]("ContractCodeView", ContractCodeViewSchema),
		g.Case[QueryResponseKind]("ViewStateResult", ViewStateResultSchema),
		g.Case[QueryResponseKind]("CallResult", CallResultSchema),
		g.Case[QueryResponseKind]("AccessKeyView", AccessKeyViewSchema),
		g.Case[QueryResponseKind]("AccessKeyList", AccessKeyListSchema),
	).
	MustBuild()

// RpcQueryResponse is a query result with the block it was computed at.
type RpcQueryResponse struct {
	Kind        QueryResponseKind
	BlockHeight BlockHeight `json:"block_height"`
	BlockHash   CryptoHash  `json:"block_hash"`
}

var RpcQueryResponseSchema = g.ObjectOf[RpcQueryResponse]("RpcQueryResponse").
	Embed("Kind", g.SchemaOf[QueryResponseKind](QueryResponseKindSchema)).
	Field("block_height", heightField).Required().
	Field("block_hash", hashField).Required().
	MustBuild()
