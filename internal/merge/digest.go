package merge

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

func contentDigest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
