package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Log is an event record emitted by one of the LOG instructions. It is
// immutable once constructed: accessors hand out copies.
type Log struct {
	address common.Address
	topics  []common.Hash
	data    []byte
}

// NewLog builds a record. topics and data are copied, callers may reuse them.
func NewLog(address common.Address, topics []common.Hash, data []byte) *Log {
	l := &Log{
		address: address,
		topics:  make([]common.Hash, len(topics)),
		data:    make([]byte, len(data)),
	}
	copy(l.topics, topics)
	copy(l.data, data)
	return l
}

func (l *Log) Address() common.Address {
	return l.address
}

func (l *Log) Topics() []common.Hash {
	topics := make([]common.Hash, len(l.topics))
	copy(topics, l.topics)
	return topics
}

func (l *Log) Topic(i int) common.Hash {
	return l.topics[i]
}

func (l *Log) TopicCount() int {
	return len(l.topics)
}

func (l *Log) Data() []byte {
	data := make([]byte, len(l.data))
	copy(data, l.data)
	return data
}

func (l *Log) DataLen() int {
	return len(l.data)
}

// ToEth converts the record into a go-ethereum log. blockNumber, txHash and
// index are non-consensus fields the state transition layer knows about.
func (l *Log) ToEth(blockNumber uint64, txHash common.Hash, index uint) *types.Log {
	return &types.Log{
		Address:     l.address,
		Topics:      l.Topics(),
		Data:        l.Data(),
		BlockNumber: blockNumber,
		TxHash:      txHash,
		Index:       index,
	}
}

// LogsBloom computes the bloom filter over the emitting addresses and topics
// of logs.
func LogsBloom(logs []*Log) types.Bloom {
	var bin types.Bloom
	for _, l := range logs {
		bin.Add(l.address.Bytes())
		for _, t := range l.topics {
			bin.Add(t[:])
		}
	}
	return bin
}
