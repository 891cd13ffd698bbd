package model

import (
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

// AccessKeyPermission is either full access or a function call allowance.
type AccessKeyPermission interface{ isAccessKeyPermission() }

// FullAccess grants every action.
type FullAccess struct{}

// FunctionCallPermission limits a key to calls on one receiver.
type FunctionCallPermission struct {
	Allowance   *Balance  `json:"allowance"`
	ReceiverID  AccountID `json:"receiver_id"`
	MethodNames []string  `json:"method_names"`
}

func (FullAccess) isAccessKeyPermission()             {}
func (FunctionCallPermission) isAccessKeyPermission() {}

var AccessKeyPermissionSchema = g.UnionOf[AccessKeyPermission]("AccessKeyPermission").
	External().
	OneOf(
		g.Case[AccessKeyPermission]("FullAccess", g.Unit[FullAccess]()),
		g.Case[AccessKeyPermission]("FunctionCall", g.ObjectOf[FunctionCallPermission]("FunctionCallPermission").
			Field("allowance", g.SchemaOf(g.Optional(codec.U128()))).
			Field("receiver_id", accountField).Required().
			Field("method_names", stringsField).Required().
			MustBuild()),
	).
	MustBuild()

type AccessKeyView struct {
	Nonce      uint64              `json:"nonce"`
	Permission AccessKeyPermission `json:"permission"`
}

var AccessKeyViewSchema = g.ObjectOf[AccessKeyView]("AccessKeyView").
	Field("nonce", u64Field).Required().
	Field("permission", g.SchemaOf[AccessKeyPermission](AccessKeyPermissionSchema)).Required().
	MustBuild()

type AccessKeyInfoView struct {
	PublicKey PublicKey     `json:"public_key"`
	AccessKey AccessKeyView `json:"access_key"`
}

var AccessKeyInfoViewSchema = g.ObjectOf[AccessKeyInfoView]("AccessKeyInfoView").
	Field("public_key", publicKeyField).Required().
	Field("access_key", g.SchemaOf[AccessKeyView](AccessKeyViewSchema)).Required().
	MustBuild()

type AccessKeyList struct {
	Keys []AccessKeyInfoView `json:"keys"`
}

var AccessKeyListSchema = g.ObjectOf[AccessKeyList]("AccessKeyList").
	Field("keys", g.SchemaOf(g.ArrayOf[AccessKeyInfoView](AccessKeyInfoViewSchema))).Required().
	MustBuild()
