package mustuse

import (
	"strings"

	"github.com/sirkon/mustuse/internal/config"
	"github.com/sirkon/mustuse/internal/detector"
)

// nameList is a comma-separated list of method names set from the command line.
type nameList struct {
	set   bool
	names []string
}

func (l *nameList) String() string {
	return strings.Join(l.names, ",")
}

func (l *nameList) Set(value string) error {
	l.set = true
	l.names = splitList(value)
	return nil
}

// referenceList is a comma-separated list of "pkg/path".Type references.
type referenceList struct {
	set  bool
	refs []config.Reference
}

func (l *referenceList) String() string {
	parts := make([]string, 0, len(l.refs))
	for _, ref := range l.refs {
		parts = append(parts, ref.String())
	}

	return strings.Join(parts, ",")
}

func (l *referenceList) Set(value string) error {
	var refs []config.Reference
	for _, item := range splitList(value) {
		var ref config.Reference
		if err := ref.UnmarshalText([]byte(item)); err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	l.set = true
	l.refs = refs
	return nil
}

// scopeValue is a detector.Scope which remembers whether it was set.
type scopeValue struct {
	set   bool
	scope detector.Scope
}

func (v *scopeValue) String() string {
	if !v.set {
		return ""
	}

	return v.scope.String()
}

func (v *scopeValue) Set(value string) error {
	if err := v.scope.UnmarshalText([]byte(value)); err != nil {
		return err
	}

	v.set = true
	return nil
}

func splitList(value string) []string {
	var res []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}

	return res
}
