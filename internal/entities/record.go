// Package entities contains core business entities.
package entities

// UserRecord ties one organization member to the SAML identity used to
// sign in. Email holds the provider-issued name identifier, which the
// reports label as an email address.
type UserRecord struct {
	Organization string
	Username     string
	Email        string
}
