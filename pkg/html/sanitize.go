package html

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/quill-dev/quill/pkg/rdom"
)

// ugcPolicy allows the formatting and link elements typical of
// user-generated content. bluemonday policies are safe for concurrent
// use once built.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitized runs untrusted markup through a UGC sanitizing policy and
// wraps the result as a Raw node. Use it instead of rdom.Raw when the
// markup comes from outside the trust boundary (user comments,
// third-party feeds).
func Sanitized(untrusted string) *rdom.Node {
	return rdom.Raw(ugcPolicy.Sanitize(untrusted))
}

// SanitizedWith is Sanitized with a caller-supplied policy.
func SanitizedWith(policy *bluemonday.Policy, untrusted string) *rdom.Node {
	return rdom.Raw(policy.Sanitize(untrusted))
}
