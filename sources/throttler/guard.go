package throttler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"parley/sources/platform"
	"parley/sources/tracing"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/unicode/norm"
)

// Guard spots users replaying the same message over and over. Texts are
// fingerprinted so trivial mutations (casing, spacing, unicode composition)
// still count as repeats.
type Guard struct {
	client *redis.Client
	config *GuardConfig
	log    *tracing.Logger
	ctx    context.Context
}

func NewGuard(client *redis.Client, config *GuardConfig, log *tracing.Logger) *Guard {
	return &Guard{client: client, config: config, log: log, ctx: context.Background()}
}

// Fingerprint collapses a message to a stable digest: NFC-normalized,
// case-folded, with whitespace runs squeezed to single spaces.
func Fingerprint(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	lastSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:16])
}

// IsSpam counts identical messages per user inside a sliding window and,
// like the throttler, fails open on storage errors.
func (x *Guard) IsSpam(userId int64, text string) bool {
	ctx, cancel := platform.ContextTimeout(x.ctx)
	defer cancel()

	key := fmt.Sprintf("spam:%d:%s", userId, Fingerprint(text))

	count, err := x.client.Incr(ctx, key).Result()
	if err != nil {
		x.log.E("Error counting message fingerprint", tracing.InnerError, err)
		return false
	}
	if count == 1 {
		if err := x.client.Expire(ctx, key, x.config.RepeatWindow).Err(); err != nil {
			x.log.W("Error setting fingerprint window", tracing.InnerError, err)
		}
	}

	return count > int64(x.config.RepeatLimit)
}
