// Package ldif implements parsing and generation of LDIF
// (LDAP Data Interchange Format) entry records as specified in RFC 2849.
//
// The package provides a streaming Parser that turns a byte stream into a
// sequence of (DN, Entry) records, and a Writer that turns records back
// into correctly folded, correctly encoded LDIF output. The two directions
// are independent and share only the line-folding rules and the safe-string
// classification used to decide between plain and base64 value encoding.
//
// # Parsing
//
//	p, err := ldif.NewParser(file)
//	if err != nil {
//		// bad option
//	}
//	for {
//		rec, err := p.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// *ldif.ParseError with line and byte offset
//		}
//		fmt.Println(rec.DN)
//	}
//
// The parser is strict by default: any malformed input terminates the
// stream with a *ParseError. With WithLenient the parser instead logs a
// warning for each anomaly and applies a local recovery so that parsing
// runs to completion.
//
// Attribute values are decoded to text using a configurable character
// encoding (UTF-8 by default). A value whose bytes cannot be decoded is
// kept as raw bytes rather than failing; a single record may therefore mix
// text and byte values. See Value.
//
// # Writing
//
//	w, err := ldif.NewWriter(out)
//	err = w.WriteRecord("cn=a,dc=b", entry)
//
// The writer chooses plain or base64 encoding per value according to the
// RFC 2849 safe-string rules and folds lines longer than the configured
// width (76 columns by default).
//
// Change records (changetype: add/modify/delete/modrdn) are not supported;
// this package deals with entry records only. URL-referenced values
// (the ":<" form) are recognized but never fetched by the parser itself;
// resolution can be delegated to a URLResolver.
package ldif
