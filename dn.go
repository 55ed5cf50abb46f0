package ldif

import "regexp"

// Distinguished name grammar, a pragmatic subset of RFC 4514: RDNs of
// attr=value pairs joined by "+", RDNs joined by ",". Values may escape
// commas with a backslash or be quoted.
const (
	attrTypePattern  = `[\w;.-]+(;[\w_-]+)*`
	attrValuePattern = `(([^,]|\\,)+|".*?")`
	attrPattern      = attrTypePattern + `[ ]*=[ ]*` + attrValuePattern
	rdnPattern       = attrPattern + `([ ]*\+[ ]*` + attrPattern + `)*[ ]*`
	dnPattern        = rdnPattern + `([ ]*,[ ]*` + rdnPattern + `)*[ ]*`
)

var dnRegexp = regexp.MustCompile(`\A` + dnPattern + `\z`)

// IsDN reports whether s is a syntactically valid string representation
// of a distinguished name. The empty string names the root DSE and is
// valid.
func IsDN(s string) bool {
	if s == "" {
		return true
	}
	return dnRegexp.MatchString(s)
}
