// Package telegram verifies Telegram Mini App init-data payloads.
//
// The check follows the official contract
// (https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app):
// an HMAC-SHA256 keyed with "WebAppData" over the bot token yields the secret
// key, which signs the sorted "key=value" lines of the payload.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// MaxInitDataAge is how old an init-data payload may be before it is
// rejected. Payloads strictly older than this fail; exactly this old passes.
const MaxInitDataAge = 86400 * time.Second

// Internal failure causes. All of them surface to clients as a uniform
// unauthorized response; they exist for server-side logs only.
var (
	errNoBotToken   = errors.New("bot token not configured")
	errMissingHash  = errors.New("payload has no hash")
	errHashMismatch = errors.New("signature mismatch")
	errExpired      = errors.New("payload expired")
	errBadUser      = errors.New("user field missing or malformed")
)

type initDataUser struct {
	ID        *int64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Validate authenticates an init-data string against the bot token and
// extracts the embedded identity. Any failure, including a missing bot
// token, fails closed.
func Validate(initData, botToken string, now time.Time) (*domain.Identity, error) {
	if botToken == "" {
		return nil, errNoBotToken
	}

	params, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}

	suppliedHash := params.Get("hash")
	if suppliedHash == "" {
		return nil, errMissingHash
	}
	params.Del("hash")

	if !hashMatches(params, botToken, suppliedHash) {
		return nil, errHashMismatch
	}

	authDate, _ := strconv.ParseInt(params.Get("auth_date"), 10, 64)
	issued := time.Unix(authDate, 0)
	if now.Sub(issued) > MaxInitDataAge {
		return nil, errExpired
	}

	var user initDataUser
	if err := json.Unmarshal([]byte(params.Get("user")), &user); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadUser, err)
	}
	if user.ID == nil {
		return nil, errBadUser
	}

	return &domain.Identity{
		UserID:   strconv.FormatInt(*user.ID, 10),
		AuthDate: issued,
	}, nil
}

// hashMatches recomputes the payload signature and compares it to the
// supplied hex hash in constant time.
func hashMatches(params url.Values, botToken, suppliedHash string) bool {
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString(params)))
	calculated := mac.Sum(nil)

	supplied, err := hex.DecodeString(suppliedHash)
	if err != nil {
		return false
	}
	return hmac.Equal(calculated, supplied)
}

// checkString joins the decoded "key=value" pairs with newlines, keys sorted
// in byte order. Values may themselves contain '=' or '\n'; they are used
// verbatim, exactly as Telegram signs them.
func checkString(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range params[k] {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	return b.String()
}
