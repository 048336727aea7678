package initdata

import (
	"fmt"
	"strconv"
	"time"
)

// Reserved field names of the init-data query string.
const (
	FieldQueryID  = "query_id"
	FieldUser     = "user"
	FieldAuthDate = "auth_date"
	FieldHash     = "hash"
)

// FieldMap holds one entry per top-level key of a parsed payload.
// Values are the percent-decoded strings as received; nothing is typed
// until extraction.
type FieldMap map[string]string

// User is the Telegram user embedded as JSON in the "user" field.
// Optional fields stay zero-valued when the payload omits them.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// InitData aggregates the validated payload. It is only ever returned
// to callers, never stored.
type InitData struct {
	QueryID  string `json:"query_id,omitempty"`
	User     User   `json:"user"`
	AuthDate string `json:"auth_date"`
	Hash     string `json:"hash"`
}

// AuthDateTime converts the auth_date field (decimal Unix seconds) to a
// time.Time.
func (d InitData) AuthDateTime() (time.Time, error) {
	sec, err := strconv.ParseInt(d.AuthDate, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid auth_date %q: %w", d.AuthDate, err)
	}
	return time.Unix(sec, 0), nil
}
