package core

import (
	"fmt"
	"strings"
)

// RepositoryReference identifies a repository by owner and name.
type RepositoryReference struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/repo" string. The input must contain
// exactly one slash with a non-empty segment on each side; anything else is
// rejected so that partial data never reaches the GitHub API.
func ParseRepository(repository string) (RepositoryReference, error) {
	owner, name, found := strings.Cut(repository, "/")
	if !found {
		return RepositoryReference{}, fmt.Errorf("%w: %q has no owner/name separator", ErrMalformedRepositoryReference, repository)
	}
	if owner == "" || name == "" {
		return RepositoryReference{}, fmt.Errorf("%w: %q has an empty owner or name", ErrMalformedRepositoryReference, repository)
	}
	if strings.Contains(name, "/") {
		return RepositoryReference{}, fmt.Errorf("%w: %q has more than one separator", ErrMalformedRepositoryReference, repository)
	}
	return RepositoryReference{Owner: owner, Name: name}, nil
}

// String renders the reference back to its "owner/repo" form.
func (r RepositoryReference) String() string {
	return r.Owner + "/" + r.Name
}
