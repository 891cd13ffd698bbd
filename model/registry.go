package model

import "github.com/reoring/rpcskema"

// Registry indexes every schema of this package by its wire name. It is built
// once at package initialization and is read-only afterwards.
var Registry = rpcskema.MustRegistry(entries()...)

func entries() []rpcskema.Entry {
	return []rpcskema.Entry{
		// enums
		rpcskema.Register("Finality", FinalitySchema),
		rpcskema.Register("SyncCheckpoint", SyncCheckpointSchema),
		rpcskema.Register("TxExecutionStatus", TxExecutionStatusSchema),
		rpcskema.Register("Direction", DirectionSchema),

		// unions
		rpcskema.Register("BlockId", BlockIDSchema),
		rpcskema.Register("BlockReference", BlockReferenceSchema),
		rpcskema.Register("ValidatorStakeView", ValidatorStakeViewSchema),
		rpcskema.Register("AccessKeyPermission", AccessKeyPermissionSchema),
		rpcskema.Register("ActionView", ActionViewSchema),
		rpcskema.Register("ExecutionStatusView", ExecutionStatusViewSchema),
		rpcskema.Register("FinalExecutionStatus", FinalExecutionStatusSchema),
		rpcskema.Register("QueryRequest", QueryRequestSchema),
		rpcskema.Register("QueryResponseKind", QueryResponseKindSchema),
		rpcskema.Register("TransactionLookup", TransactionLookupSchema),
		rpcskema.Register("ErrorCause", ErrorCauseSchema),
		rpcskema.Register("RequestId", RequestIDSchema),

		// views
		rpcskema.Register("BlockHeaderView", BlockHeaderViewSchema),
		rpcskema.Register("ChunkHeaderView", ChunkHeaderViewSchema),
		rpcskema.Register("BlockView", BlockViewSchema),
		rpcskema.Register("AccessKeyView", AccessKeyViewSchema),
		rpcskema.Register("AccessKeyInfoView", AccessKeyInfoViewSchema),
		rpcskema.Register("AccessKeyList", AccessKeyListSchema),
		rpcskema.Register("AccountView", AccountViewSchema),
		rpcskema.Register("ContractCodeView", ContractCodeViewSchema),
		rpcskema.Register("ViewStateResult", ViewStateResultSchema),
		rpcskema.Register("CallResult", CallResultSchema),
		rpcskema.Register("ExecutionOutcomeView", ExecutionOutcomeViewSchema),
		rpcskema.Register("ExecutionOutcomeWithIdView", ExecutionOutcomeWithIDViewSchema),
		rpcskema.Register("MerklePathItem", MerklePathItemSchema),
		rpcskema.Register("SignedTransactionView", SignedTransactionViewSchema),
		rpcskema.Register("Version", VersionSchema),
		rpcskema.Register("StatusSyncInfo", SyncInfoSchema),
		rpcskema.Register("RpcError", RpcErrorSchema),

		// method params and results
		rpcskema.Register("RpcBlockRequest", RpcBlockRequestSchema),
		rpcskema.Register("RpcQueryRequest", RpcQueryRequestSchema),
		rpcskema.Register("RpcQueryResponse", RpcQueryResponseSchema),
		rpcskema.Register("RpcStatusRequest", RpcStatusRequestSchema),
		rpcskema.Register("RpcStatusResponse", RpcStatusResponseSchema),
		rpcskema.Register("RpcGasPriceRequest", RpcGasPriceRequestSchema),
		rpcskema.Register("RpcGasPriceResponse", RpcGasPriceResponseSchema),
		rpcskema.Register("RpcTransactionStatusRequest", RpcTransactionStatusRequestSchema),
		rpcskema.Register("RpcTransactionResponse", RpcTransactionResponseSchema),

		// envelopes
		rpcskema.Register("JsonRpcRequest_for_block", RequestSchema("JsonRpcRequest_for_block", "block", RpcBlockRequestSchema)),
		rpcskema.Register("JsonRpcRequest_for_query", RequestSchema("JsonRpcRequest_for_query", "query", RpcQueryRequestSchema)),
		rpcskema.Register("JsonRpcRequest_for_status", RequestSchema("JsonRpcRequest_for_status", "status", RpcStatusRequestSchema)),
		rpcskema.Register("JsonRpcRequest_for_gas_price", RequestSchema("JsonRpcRequest_for_gas_price", "gas_price", RpcGasPriceRequestSchema)),
		rpcskema.Register("JsonRpcRequest_for_tx", RequestSchema("JsonRpcRequest_for_tx", "tx", RpcTransactionStatusRequestSchema)),
		rpcskema.Register("JsonRpcResponse_for_BlockView", ResponseSchema("JsonRpcResponse_for_BlockView", BlockViewSchema)),
		rpcskema.Register("JsonRpcResponse_for_RpcQueryResponse", ResponseSchema("JsonRpcResponse_for_RpcQueryResponse", RpcQueryResponseSchema)),
		rpcskema.Register("JsonRpcResponse_for_RpcStatusResponse", ResponseSchema("JsonRpcResponse_for_RpcStatusResponse", RpcStatusResponseSchema)),
		rpcskema.Register("JsonRpcResponse_for_RpcGasPriceResponse", ResponseSchema("JsonRpcResponse_for_RpcGasPriceResponse", RpcGasPriceResponseSchema)),
		rpcskema.Register("JsonRpcResponse_for_RpcTransactionResponse", ResponseSchema("JsonRpcResponse_for_RpcTransactionResponse", RpcTransactionResponseSchema)),
	}
}
