package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	StoreCreditPrefix  = "STORE"
	DiscountCodePrefix = "EXCH"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode produces a credit code of the form {PREFIX}-{TTTT}-{RRRR}:
// a base36 fragment of the current millisecond clock plus a base36 random
// fragment, uppercase. Collisions within one process are negligible; hard
// uniqueness against stored codes is not enforced here.
func GenerateCode(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, timeFragment(4), randomFragment(4))
}

// GenerateRequestID produces a collision-resistant request identifier with a
// time-based prefix, e.g. REQ-1717171717171-042.
func GenerateRequestID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000))
	return fmt.Sprintf("REQ-%d-%03d", time.Now().UnixMilli(), n.Int64())
}

func timeFragment(length int) string {
	frag := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(frag) > length {
		frag = frag[len(frag)-length:]
	}
	return frag
}

func randomFragment(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		b.WriteByte(base36Alphabet[n.Int64()])
	}
	return b.String()
}
