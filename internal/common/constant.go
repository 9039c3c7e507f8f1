// Package common contains shared constants and sentinel errors used across
// Finz coach components.
package common

// AccessTokenHeaderName is the HTTP header used to carry the static access
// token on outbound Coach API requests.
const AccessTokenHeaderName = "accessToken"

// ProfileKey is the key-value store key holding the serialized user profile.
const ProfileKey = "PROFILE_V1"

// DefaultUserID is used when neither a profile nor configuration names a user.
const DefaultUserID int64 = 1
