package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// signingContext keys the first HMAC stage. Fixed by the Web Apps
// protocol: the bot token is the *message* of that stage, not the key.
const signingContext = "WebAppData"

// Authenticator verifies init-data signatures for one bot token. The
// token is consumed at construction and only the derived signing key is
// retained; it is safe for unbounded concurrent use.
type Authenticator struct {
	secretKey []byte
}

// New derives the signing key from the bot token. The token is opaque
// bytes and must be non-empty.
func New(botToken string) (*Authenticator, error) {
	if botToken == "" {
		return nil, errors.New("bot token must not be empty")
	}
	mac := hmac.New(sha256.New, []byte(signingContext))
	mac.Write([]byte(botToken))
	return &Authenticator{secretKey: mac.Sum(nil)}, nil
}

// Sign computes the expected signature over a canonical data-check
// string as lowercase hex.
func (a *Authenticator) Sign(canonical string) string {
	mac := hmac.New(sha256.New, a.secretKey)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate reports whether raw init data carries a signature produced
// by the holder of the bot token. A mismatching signature is the
// ordinary false result; errors are reserved for payloads that cannot
// be evaluated at all (missing hash, unparseable input).
func (a *Authenticator) Validate(raw string) (bool, error) {
	_, err := a.verifiedFields(raw, FieldHash)
	if errors.Is(err, ErrInvalidData) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetTelegramUser validates raw init data and returns the embedded
// user. A failed signature check surfaces as ErrInvalidData.
func (a *Authenticator) GetTelegramUser(raw string) (User, error) {
	fields, err := a.verifiedFields(raw, FieldHash)
	if err != nil {
		return User{}, err
	}
	return ExtractUser(fields)
}

// GetInitData validates raw init data and returns the full typed
// payload. A failed signature check surfaces as ErrInvalidData.
func (a *Authenticator) GetInitData(raw string) (InitData, error) {
	fields, err := a.verifiedFields(raw, FieldHash, FieldAuthDate)
	if err != nil {
		return InitData{}, err
	}
	return ExtractInitData(fields)
}

// verifiedFields parses raw init data and checks its signature,
// returning the field map only when the signature holds. The
// comparison runs in constant time relative to the secret-derived
// value.
func (a *Authenticator) verifiedFields(raw string, required ...string) (FieldMap, error) {
	fields, err := Parse(raw, required...)
	if err != nil {
		return nil, err
	}
	canonical, err := Canonicalize(fields)
	if err != nil {
		return nil, err
	}
	expected := a.Sign(canonical)
	if !hmac.Equal([]byte(expected), []byte(fields[FieldHash])) {
		return nil, fmt.Errorf("%w: signature mismatch", ErrInvalidData)
	}
	return fields, nil
}
