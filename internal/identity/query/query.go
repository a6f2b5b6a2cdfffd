// Package query defines the wire shape of the external-identities GraphQL
// query shared by identity backends and the record extractor.
package query

// Response mirrors the nesting of the provider reply for one organization.
type Response struct {
	Organization Organization `graphql:"organization(login: $login)"`
}

// Organization wraps the SAML identity provider configured for an
// organization. The provider is null when the organization does not enforce
// SAML single sign-on.
type Organization struct {
	SAMLIdentityProvider *SAMLIdentityProvider `graphql:"samlIdentityProvider"`
}

// SAMLIdentityProvider carries the provider SSO endpoint and the first page
// of linked identities.
type SAMLIdentityProvider struct {
	SSOURL             string             `graphql:"ssoUrl"`
	ExternalIdentities ExternalIdentities `graphql:"externalIdentities(first: $first)"`
}

// ExternalIdentities is the connection wrapper around identity edges.
type ExternalIdentities struct {
	Edges []Edge `graphql:"edges"`
}

// Edge wraps a single external identity node.
type Edge struct {
	Node Node `graphql:"node"`
}

// Node is one external identity. SAMLIdentity and User are null for
// provisioned identities never linked to an account.
type Node struct {
	GUID         string        `graphql:"guid"`
	SAMLIdentity *SAMLIdentity `graphql:"samlIdentity"`
	User         *User         `graphql:"user"`
}

// SAMLIdentity carries the name identifier issued by the provider.
type SAMLIdentity struct {
	NameID string `graphql:"nameId"`
}

// User is the linked account.
type User struct {
	Login string `graphql:"login"`
}
