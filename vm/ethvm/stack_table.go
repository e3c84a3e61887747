package ethvm

import (
	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
)

func minStack(pops, push int) int {
	return pops
}

func maxStack(pop, push int) int {
	return int(params.StackLimit) + pop - push
}
