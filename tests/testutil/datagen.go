package testutil

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/ethereum/go-ethereum/common"
)

// RandomStakerAddress returns a random checksummed EVM style address.
func RandomStakerAddress() string {
	var raw [common.AddressLength]byte
	for i := range raw {
		raw[i] = byte(gofakeit.Number(0, 255))
	}
	return common.BytesToAddress(raw[:]).Hex()
}

// RandomAssetIDs returns n distinct random asset ids.
func RandomAssetIDs(n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	ids := make([]uint64, 0, n)
	for len(ids) < n {
		id := gofakeit.Uint64()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// RandomQueueMessageBody returns a random json-ish payload for queue tests.
func RandomQueueMessageBody() string {
	return `{"event_id":"` + gofakeit.UUID() + `"}`
}
