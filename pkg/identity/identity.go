// Package identity derives anonymous rate-limiting keys for permissionless
// clients.
//
// No credential is required to submit an inquiry, so the gateway needs a
// stable-but-anonymous stand-in for client identity. The surrogate is a hash
// of the transport peer address plus an optional client-supplied opaque
// token, salted with a per-process value so surrogates cannot be correlated
// across restarts or joined against other deployments.
package identity

import (
	"crypto/rand"
	"encoding/binary"
	"net"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Surrogate is an opaque hashable key used for rate limiting. It carries no
// network resources; it is purely a lookup key.
type Surrogate uint64

// Identity describes where an inquiry came from. Exactly one of the two
// shapes exists: address-only, or address plus a client-supplied token.
type Identity struct {
	Addr  string
	Token string
}

// AddressOnly builds an identity from the transport peer address alone.
func AddressOnly(addr string) Identity {
	return Identity{Addr: addr}
}

// TokenBacked builds an identity from the peer address and a client token.
// An empty or malformed token degrades to AddressOnly rather than failing.
func TokenBacked(addr, token string) Identity {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > maxTokenLen {
		return AddressOnly(addr)
	}
	return Identity{Addr: addr, Token: token}
}

// maxTokenLen bounds attacker-controlled token input. Anything longer is
// treated as malformed and ignored.
const maxTokenLen = 256

// Resolver turns identities into surrogates. The zero value is not usable;
// construct with NewResolver.
type Resolver struct {
	salt [16]byte
}

// NewResolver creates a resolver with a fresh random salt. All surrogates
// produced by one resolver are mutually consistent for the process lifetime.
func NewResolver() *Resolver {
	r := &Resolver{}
	if _, err := rand.Read(r.salt[:]); err != nil {
		// crypto/rand failing is unrecoverable for salting; fall back to a
		// fixed salt so resolution still never blocks or errors.
		binary.LittleEndian.PutUint64(r.salt[:8], 0x6c6f79616c2d7762)
	}
	return r
}

// Resolve derives the surrogate for an identity. Deterministic for a given
// resolver: the same identity always maps to the same surrogate. Never
// blocks, never fails.
func (r *Resolver) Resolve(id Identity) Surrogate {
	d := xxhash.New()
	_, _ = d.Write(r.salt[:])

	// Strip the port so reconnects from the same host share a bucket. A
	// client token, when present, scopes the bucket more narrowly than the
	// address alone.
	_, _ = d.WriteString(hostOnly(id.Addr))
	if id.Token != "" {
		_, _ = d.WriteString("|")
		_, _ = d.WriteString(id.Token)
	}
	return Surrogate(d.Sum64())
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
