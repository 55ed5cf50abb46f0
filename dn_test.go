package ldif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDN(t *testing.T) {
	tests := []struct {
		dn    string
		valid bool
	}{
		// The empty DN names the root DSE.
		{"", true},
		{"cn=a", true},
		{"cn=a,dc=example,dc=com", true},
		{"cn = a , dc = b", true},
		{"uid=jdoe+cn=John Doe,dc=example,dc=com", true},
		{`cn=a\,b,dc=c`, true},
		{`cn="Doe, John",dc=example`, true},
		{"ou=Sales;Region=EMEA,dc=example", true},

		{"no equals sign", false},
		{"cn", false},
		{"=a", false},
		{"cn=a,", false},
		{"cn=a,,dc=b", false},
		{",cn=a", false},
	}
	for _, tt := range tests {
		t.Run(tt.dn, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsDN(tt.dn))
		})
	}
}
