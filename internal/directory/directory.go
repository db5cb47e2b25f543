package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// UserRecord is a single entry of the user directory.
type UserRecord struct {
	ID                string `json:"_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePicture,omitempty"`
}

// UnmarshalJSON accepts both the `_id`/`profilePicture` names used by the
// directory service and the plain `id`/`profilePictureUrl` variants.
func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var wire struct {
		UnderscoreID      json.RawMessage `json:"_id"`
		ID                json.RawMessage `json:"id"`
		Username          string          `json:"username"`
		Email             string          `json:"email"`
		ProfilePicture    string          `json:"profilePicture"`
		ProfilePictureURL string          `json:"profilePictureUrl"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	u.ID = opaqueID(wire.UnderscoreID)
	if u.ID == "" {
		u.ID = opaqueID(wire.ID)
	}
	u.Username = wire.Username
	u.Email = wire.Email
	u.ProfilePictureURL = wire.ProfilePicture
	if u.ProfilePictureURL == "" {
		u.ProfilePictureURL = wire.ProfilePictureURL
	}
	return nil
}

// opaqueID renders an identifier of any JSON scalar type as a string.
// Strings are unquoted; numbers and other literals keep their source text.
func opaqueID(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}

// Initials returns the first rune of every space separated part of the
// username, e.g. "Ada Lovelace" -> "AL".
func (u UserRecord) Initials() string {
	return Initials(u.Username)
}

// Initials builds an avatar placeholder from a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

// Source loads the complete user directory.
type Source interface {
	FetchAllUsers(ctx context.Context) ([]UserRecord, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]UserRecord, error)

// FetchAllUsers calls f(ctx).
func (f SourceFunc) FetchAllUsers(ctx context.Context) ([]UserRecord, error) {
	return f(ctx)
}

// FetchError reports a failed directory load.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("directory fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("directory fetch from %s failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Clone returns a shallow copy of records.
func Clone(records []UserRecord) []UserRecord {
	if records == nil {
		return nil
	}
	dup := make([]UserRecord, len(records))
	copy(dup, records)
	return dup
}
