package model

import (
	"github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// ActionView is one action of a transaction.
type ActionView interface{ isActionView() }

type CreateAccountAction struct{}

type DeployContractAction struct {
	Code []byte `json:"code"`
}

type FunctionCallAction struct {
	MethodName string  `json:"method_name"`
	Args       []byte  `json:"args"`
	Gas        Gas     `json:"gas"`
	Deposit    Balance `json:"deposit"`
}

type TransferAction struct {
	Deposit Balance `json:"deposit"`
}

type StakeAction struct {
	Stake     Balance   `json:"stake"`
	PublicKey PublicKey `json:"public_key"`
}

type AddKeyAction struct {
	PublicKey PublicKey     `json:"public_key"`
	AccessKey AccessKeyView `json:"access_key"`
}

type DeleteKeyAction struct {
	PublicKey PublicKey `json:"public_key"`
}

type DeleteAccountAction struct {
	BeneficiaryID AccountID `json:"beneficiary_id"`
}

func (CreateAccountAction) isActionView()  {}
func (DeployContractAction) isActionView() {}
func (FunctionCallAction) isActionView()   {}
func (TransferAction) isActionView()       {}
func (StakeAction) isActionView()          {}
func (AddKeyAction) isActionView()         {}
func (DeleteKeyAction) isActionView()      {}
func (DeleteAccountAction) isActionView()  {}

var ActionViewSchema = g.UnionOf[ActionView]("ActionView").
	External().
	OneOf(
		g.Case[ActionView]("CreateAccount", g.Unit[CreateAccountAction]()),
		g.Case[ActionView]("DeployContract", g.ObjectOf[DeployContractAction]("DeployContractAction").
			Field("code", base64Field).Required().
			MustBuild()),
		g.Case[ActionView]("FunctionCall", g.ObjectOf[FunctionCallAction]("FunctionCallAction").
			Field("method_name", stringField).Required().
			Field("args", base64Field).Required().
			Field("gas", gasField).Required().
			Field("deposit", balanceField).Required().
			MustBuild()),
		g.Case[ActionView]("Transfer", g.ObjectOf[TransferAction]("TransferAction").
			Field("deposit", balanceField).Required().
			MustBuild()),
		g.Case[ActionView]("Stake", g.ObjectOf[StakeAction]("StakeAction").
			Field("stake", balanceField).Required().
			Field("public_key", publicKeyField).Required().
			MustBuild()),
		g.Case[ActionView]("AddKey", g.ObjectOf[AddKeyAction]("AddKeyAction").
			Field("public_key", publicKeyField).Required().
			Field("access_key", g.SchemaOf[AccessKeyView](AccessKeyViewSchema)).Required().
			MustBuild()),
		g.Case[ActionView]("DeleteKey", g.ObjectOf[DeleteKeyAction]("DeleteKeyAction").
			Field("public_key", publicKeyField).Required().
			MustBuild()),
		g.Case[ActionView]("DeleteAccount", g.ObjectOf[DeleteAccountAction]("DeleteAccountAction").
			Field("beneficiary_id", accountField).Required().
			MustBuild()),
	).
	MustBuild()

// SuccessValue is the base64 carried return value of a successful execution.
type SuccessValue []byte

// SuccessReceiptID is the receipt an execution continued with.
type SuccessReceiptID CryptoHash

// ExecutionFailure carries an execution error whose shape is not modeled.
type ExecutionFailure struct {
	Error rpcskema.RawValue
}

var (
	successValueSchema     = codec.Base64Of[SuccessValue]()
	executionFailureSchema = g.Transform(g.Opaque(),
		func(r rpcskema.RawValue) (ExecutionFailure, error) { return ExecutionFailure{Error: r}, nil },
		func(f ExecutionFailure) (rpcskema.RawValue, error) { return f.Error, nil },
	)
)

// ExecutionStatusView is the status of a single receipt or transaction outcome.
type ExecutionStatusView interface{ isExecutionStatusView() }

type ExecutionUnknown struct{}

func (ExecutionUnknown) isExecutionStatusView() {}
func (ExecutionFailure) isExecutionStatusView() {}
func (SuccessValue) isExecutionStatusView()     {}
func (SuccessReceiptID) isExecutionStatusView() {}

var ExecutionStatusViewSchema = g.UnionOf[ExecutionStatusView]("ExecutionStatusView").
	External().
	OneOf(
		g.Case[ExecutionStatusView]("Unknown", g.Unit[ExecutionUnknown]()),
		g.Case[ExecutionStatusView]("Failure", executionFailureSchema),
		g.Case[ExecutionStatusView]("SuccessValue", successValueSchema),
		g.Case[ExecutionStatusView]("SuccessReceiptId", codec.StringOf[SuccessReceiptID]()),
	).
	MustBuild()

// FinalExecutionStatus is the status of a whole transaction.
type FinalExecutionStatus interface{ isFinalExecutionStatus() }

type NotStarted struct{}
type Started struct{}

func (NotStarted) isFinalExecutionStatus()       {}
func (Started) isFinalExecutionStatus()          {}
func (ExecutionFailure) isFinalExecutionStatus() {}
func (SuccessValue) isFinalExecutionStatus()     {}

var FinalExecutionStatusSchema = g.UnionOf[FinalExecutionStatus]("FinalExecutionStatus").
	External().
	OneOf(
		g.Case[FinalExecutionStatus]("NotStarted", g.Unit[NotStarted]()),
		g.Case[FinalExecutionStatus]("Started", g.Unit[Started]()),
		g.Case[FinalExecutionStatus]("Failure", executionFailureSchema),
		g.Case[FinalExecutionStatus]("SuccessValue", successValueSchema),
	).
	MustBuild()

type ExecutionOutcomeView struct {
	Logs        []string            `json:"logs"`
	ReceiptIDs  []CryptoHash        `json:"receipt_ids"`
	GasBurnt    Gas                 `json:"gas_burnt"`
	TokensBurnt Balance             `json:"tokens_burnt"`
	ExecutorID  AccountID           `json:"executor_id"`
	Status      ExecutionStatusView `json:"status"`
	Metadata    rpcskema.RawValue   `json:"metadata"`
}

var ExecutionOutcomeViewSchema = g.ObjectOf[ExecutionOutcomeView]("ExecutionOutcomeView").
	Field("logs", stringsField).Required().
	Field("receipt_ids", hashesField).Required().
	Field("gas_burnt", gasField).Required().
	Field("tokens_burnt", balanceField).Required().
	Field("executor_id", accountField).Required().
	Field("status", g.SchemaOf[ExecutionStatusView](ExecutionStatusViewSchema)).Required().
	Field("metadata", opaqueField).
	MustBuild()

type MerklePathItem struct {
	Hash      CryptoHash `json:"hash"`
	Direction Direction  `json:"direction"`
}

var MerklePathItemSchema = g.ObjectOf[MerklePathItem]("MerklePathItem").
	Field("hash", hashField).Required().
	Field("direction", g.SchemaOf[Direction](DirectionSchema)).Required().
	MustBuild()

type ExecutionOutcomeWithIDView struct {
	Proof     []MerklePathItem     `json:"proof"`
	BlockHash CryptoHash           `json:"block_hash"`
	ID        CryptoHash           `json:"id"`
	Outcome   ExecutionOutcomeView `json:"outcome"`
}

var ExecutionOutcomeWithIDViewSchema = g.ObjectOf[ExecutionOutcomeWithIDView]("ExecutionOutcomeWithIdView").
	Field("proof", g.SchemaOf(g.ArrayOf[MerklePathItem](MerklePathItemSchema))).Required().
	Field("block_hash", hashField).Required().
	Field("id", hashField).Required().
	Field("outcome", g.SchemaOf[ExecutionOutcomeView](ExecutionOutcomeViewSchema)).Required().
	MustBuild()

type SignedTransactionView struct {
	SignerID    AccountID    `json:"signer_id"`
	PublicKey   PublicKey    `json:"public_key"`
	Nonce       uint64       `json:"nonce"`
	ReceiverID  AccountID    `json:"receiver_id"`
	Actions     []ActionView `json:"actions"`
	PriorityFee uint64       `json:"priority_fee"`
	Signature   Signature    `json:"signature"`
	Hash        CryptoHash   `json:"hash"`
}

var SignedTransactionViewSchema = g.ObjectOf[SignedTransactionView]("SignedTransactionView").
	Field("signer_id", accountField).Required().
	Field("public_key", publicKeyField).Required().
	Field("nonce", u64Field).Required().
	Field("receiver_id", accountField).Required().
	Field("actions", g.SchemaOf(g.ArrayOf[ActionView](ActionViewSchema))).Required().
	Field("priority_fee", u64Field).Default(json0).
	Field("signature", signatureField).Required().
	Field("hash", hashField).Required().
	MustBuild()

// RpcTransactionResponse is the result of the "tx" method.
type RpcTransactionResponse struct {
	FinalExecutionStatus TxExecutionStatus            `json:"final_execution_status"`
	Status               FinalExecutionStatus         `json:"status"`
	Transaction          SignedTransactionView        `json:"transaction"`
	TransactionOutcome   ExecutionOutcomeWithIDView   `json:"transaction_outcome"`
	ReceiptsOutcome      []ExecutionOutcomeWithIDView `json:"receipts_outcome"`
}

var RpcTransactionResponseSchema = g.ObjectOf[RpcTransactionResponse]("RpcTransactionResponse").
	Field("final_execution_status", g.SchemaOf[TxExecutionStatus](TxExecutionStatusSchema)).Default("NONE").
	Field("status", g.SchemaOf[FinalExecutionStatus](FinalExecutionStatusSchema)).Required().
	Field("transaction", g.SchemaOf[SignedTransactionView](SignedTransactionViewSchema)).Required().
	Field("transaction_outcome", g.SchemaOf[ExecutionOutcomeWithIDView](ExecutionOutcomeWithIDViewSchema)).Required().
	Field("receipts_outcome", g.SchemaOf(g.ArrayOf[ExecutionOutcomeWithIDView](ExecutionOutcomeWithIDViewSchema))).Required().
	MustBuild()

// TransactionLookup identifies the transaction a "tx" request asks about.
type TransactionLookup interface{ isTransactionLookup() }

type TransactionByHash struct {
	TxHash          CryptoHash `json:"tx_hash"`
	SenderAccountID AccountID  `json:"sender_account_id"`
}

type SignedTransaction struct {
	SignedTx []byte `json:"signed_tx_base64"`
}

func (TransactionByHash) isTransactionLookup() {}
func (SignedTransaction) isTransactionLookup() {}

var TransactionLookupSchema = g.UnionOf[TransactionLookup]("TransactionLookup").
	OneOf(
		g.Case[TransactionLookup]("tx_hash", g.ObjectOf[TransactionByHash]("TransactionByHash").
			Field("tx_hash", hashField).Required().
			Field("sender_account_id", accountField).Required().
			MustBuild()),
		g.Case[TransactionLookup]("signed_tx_base64", g.ObjectOf[SignedTransaction]("SignedTransaction").
			Field("signed_tx_base64", base64Field).Required().
			MustBuild()),
	).
	MustBuild()

// RpcTransactionStatusRequest is the params object of the "tx" method.
type RpcTransactionStatusRequest struct {
	Lookup    TransactionLookup
	WaitUntil TxExecutionStatus `json:"wait_until"`
}

var RpcTransactionStatusRequestSchema = g.ObjectOf[RpcTransactionStatusRequest]("RpcTransactionStatusRequest").
	Embed("Lookup", g.SchemaOf[TransactionLookup](TransactionLookupSchema)).
	Field("wait_until", g.SchemaOf[TxExecutionStatus](TxExecutionStatusSchema)).Default("EXECUTED_OPTIMISTIC").
	MustBuild()
