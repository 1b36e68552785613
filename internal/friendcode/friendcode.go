package friendcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"lukechampine.com/blake3"
)

// A friend code is an offline token: JSON payload plus a truncated blake3
// checksum, base64url-encoded. Exchange is manual (chat, paper, carrier
// pigeon); nothing here talks to a network.

const checksumLen = 4

// ErrMalformed is returned for tokens that fail to decode or whose checksum
// does not match. Callers surface it as a validation message; no state is
// touched.
var ErrMalformed = errors.New("friendcode: malformed code")

// Payload is the encoded statistic.
type Payload struct {
	ID   string  `json:"id"`
	Best float64 `json:"best"`
}

// Encode packs a player's best-season total into a shareable token.
func Encode(playerID string, bestSeason float64) (string, error) {
	body, err := json.Marshal(Payload{ID: playerID, Best: bestSeason})
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(body)
	token := append(body, sum[:checksumLen]...)
	return base64.RawURLEncoding.EncodeToString(token), nil
}

// Decode validates and unpacks a token.
func Decode(code string) (Payload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) <= checksumLen {
		return Payload{}, ErrMalformed
	}
	body, check := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	sum := blake3.Sum256(body)
	if !bytes.Equal(check, sum[:checksumLen]) {
		return Payload{}, ErrMalformed
	}
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p, nil
}

// Comparison is the pure result of stacking a friend's best against yours.
type Comparison struct {
	FriendID   string  `json:"friend_id"`
	FriendBest float64 `json:"friend_best"`
	LocalBest  float64 `json:"local_best"`
	Ahead      bool    `json:"ahead"`
	Margin     float64 `json:"margin"`
}

// Compare never mutates state; it only reports who is ahead and by how much.
func Compare(localBest float64, p Payload) Comparison {
	return Comparison{
		FriendID:   p.ID,
		FriendBest: p.Best,
		LocalBest:  localBest,
		Ahead:      localBest >= p.Best,
		Margin:     localBest - p.Best,
	}
}
