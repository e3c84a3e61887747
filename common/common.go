package common

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// EventSignature returns the topic an event with the canonical signature sig
// (e.g. "Transfer(address,address,uint256)") carries as its first topic.
func EventSignature(sig string) common.Hash {
	return crypto.Keccak256Hash([]byte(sig))
}

// 字转换成主题
func WordToHash(w *uint256.Int) common.Hash {
	return common.Hash(w.Bytes32())
}

func HashToWord(h common.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes32(h[:])
}
