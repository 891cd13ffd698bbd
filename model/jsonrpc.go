package model

import (
	"errors"

	"github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// RequestID is the id of a JSON-RPC call: a number or a string.
type RequestID interface{ isRequestID() }

type NumericID int64
type StringID string

func (NumericID) isRequestID() {}
func (StringID) isRequestID()  {}

var RequestIDSchema = g.UnionOf[RequestID]("RequestId").
	OneOf(
		g.Case[RequestID]("number", codec.IntOf[NumericID]()),
		g.Case[RequestID]("string", codec.StringOf[StringID]()),
	).
	MustBuild()

var requestIDField = g.SchemaOf[RequestID](RequestIDSchema)

// MethodName is the method member of a request.
type MethodName string

// Request is a JSON-RPC request envelope carrying params P.
type Request[P any] struct {
	JSONRPC string     `json:"jsonrpc"`
	ID      RequestID  `json:"id"`
	Method  MethodName `json:"method"`
	Params  P          `json:"params"`
}

// RequestSchema builds the envelope schema of method. Any other method name is
// rejected as unknown_variant.
func RequestSchema[P any](name, method string, params rpcskema.Schema[P]) *g.ObjectSchema[Request[P]] {
	return g.ObjectOf[Request[P]](name).
		Field("jsonrpc", stringField).Default("2.0").
		Field("id", requestIDField).Required().
		Field("method", g.SchemaOf[MethodName](g.MustEnum("Method", g.Tag(MethodName(method), method)))).Required().
		Field("params", g.SchemaOf(params)).Required().
		MustBuild()
}

// Outcome is either a result or an error.
type Outcome interface{ isOutcome() }

// Success carries the result of a call.
type Success[T any] struct {
	Result T `json:"result"`
}

// Failure carries the error of a call.
type Failure struct {
	Error RpcError `json:"error"`
}

func (Success[T]) isOutcome() {}
func (Failure) isOutcome()    {}

// Response is a JSON-RPC response envelope whose result has type T.
type Response[T any] struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      RequestID `json:"id"`
	Outcome Outcome
}

// ResponseSchema builds the envelope schema for results of type T. The result
// variant is tried before the error variant.
func ResponseSchema[T any](name string, result rpcskema.Schema[T]) *g.ObjectSchema[Response[T]] {
	outcome := g.UnionOf[Outcome](name+"_outcome").
		OneOf(
			g.Case[Outcome]("result", g.ObjectOf[Success[T]]("Success").
				Field("result", g.SchemaOf(result)).Required().
				MustBuild()),
			g.Case[Outcome]("error", g.ObjectOf[Failure]("Failure").
				Field("error", g.SchemaOf[RpcError](RpcErrorSchema)).Required().
				MustBuild()),
		).
		MustBuild()
	return g.ObjectOf[Response[T]](name).
		Field("jsonrpc", stringField).Default("2.0").
		Field("id", requestIDField).Required().
		Embed("Outcome", g.SchemaOf[Outcome](outcome)).
		MustBuild()
}

// Method describes one RPC method by the registry names of its params and result.
type Method struct {
	Name   string
	Params string
	Result string
}

// Methods lists the modeled RPC methods.
var Methods = []Method{
	{Name: "block", Params: "RpcBlockRequest", Result: "BlockView"},
	{Name: "query", Params: "RpcQueryRequest", Result: "RpcQueryResponse"},
	{Name: "status", Params: "RpcStatusRequest", Result: "RpcStatusResponse"},
	{Name: "gas_price", Params: "RpcGasPriceRequest", Result: "RpcGasPriceResponse"},
	{Name: "tx", Params: "RpcTransactionStatusRequest", Result: "RpcTransactionResponse"},
}

// RpcStatusRequest is the params of the "status" method, which takes none.
type RpcStatusRequest struct{}

// RpcStatusRequestSchema accepts null, [] or {} and encodes as [].
var RpcStatusRequestSchema = g.Transform(g.Opaque(),
	func(r rpcskema.RawValue) (RpcStatusRequest, error) {
		switch v := r.Value().(type) {
		case nil:
			return RpcStatusRequest{}, nil
		case []any:
			if len(v) == 0 {
				return RpcStatusRequest{}, nil
			}
		case map[string]any:
			if len(v) == 0 {
				return RpcStatusRequest{}, nil
			}
		}
		return RpcStatusRequest{}, errors.New("status takes no params")
	},
	func(RpcStatusRequest) (rpcskema.RawValue, error) { return rpcskema.NewRawValue([]any{}), nil },
)
