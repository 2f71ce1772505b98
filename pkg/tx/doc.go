// Package tx assembles, anchors, and signs Graphene transactions.
//
// A transaction references a recent block (the TaPoS anchor), expires
// at a fixed time, and carries a list of operations. Its signing
// digest is the sha256 of the chain id followed by the canonical
// serialization, so a signature binds the transaction to exactly one
// network.
//
// # Quick Start
//
//	var t tx.Transaction
//	t.ApplyRefBlock(headNum, headID)
//	t.SetExpiration(time.Now(), 5*time.Minute)
//	t.PushOperation(&ops.Transfer{ /* ... */ })
//
//	chainID, _ := tx.ChainIDFromHex(tx.MainnetChainID)
//	signed, err := t.Sign(chainID, priv)
package tx
