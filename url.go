package ldif

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// URLResolver fetches the content a URL-referenced value (the ":<" form)
// points at. The parser core never fetches anything itself; a resolver
// is an explicit opt-in via WithURLResolver.
type URLResolver interface {
	// Resolve returns the bytes the reference points at.
	Resolve(ref string) ([]byte, error)
}

// FileResolver resolves file: URLs and bare filesystem paths by reading
// the referenced file. Any other URL scheme is rejected; fetching remote
// schemes is deliberately left to caller-supplied resolvers.
type FileResolver struct {
	// Root, when set, is prepended to relative paths.
	Root string
}

// Resolve implements URLResolver.
func (r FileResolver) Resolve(ref string) ([]byte, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("ldif: invalid value URL %q: %w", ref, err)
	}
	var path string
	switch {
	case u.Scheme == "":
		path = ref
	case strings.EqualFold(u.Scheme, "file"):
		if u.Host != "" && u.Host != "localhost" {
			return nil, fmt.Errorf("ldif: refusing non-local file URL %q", ref)
		}
		path = u.Path
	default:
		return nil, fmt.Errorf("ldif: unsupported URL scheme %q", u.Scheme)
	}
	if r.Root != "" && !strings.HasPrefix(path, "/") {
		path = r.Root + "/" + path
	}
	return os.ReadFile(path)
}
