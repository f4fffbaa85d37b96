// Package gitutil parses GitHub locations given on the command line.
package gitutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/slash-dispatch/internal/core"
)

var (
	prURLRegex       = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/pull/(\d+)$`)
	prShorthandRegex = regexp.MustCompile(`^([^/#\s]+)/([^/#\s]+)#(\d+)$`)
)

// PullRequestLocation identifies a pull request and the repository it lives in.
type PullRequestLocation struct {
	Repository core.RepositoryReference
	Number     int
}

// ParsePullRequest accepts a pull request URL
// (https://github.com/{owner}/{repo}/pull/{number}) or the owner/repo#number
// shorthand.
func ParsePullRequest(s string) (PullRequestLocation, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "/")

	matches := prURLRegex.FindStringSubmatch(s)
	if matches == nil {
		matches = prShorthandRegex.FindStringSubmatch(s)
	}
	if len(matches) != 4 {
		return PullRequestLocation{}, fmt.Errorf("invalid pull request reference: %s", s)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil || number <= 0 {
		return PullRequestLocation{}, fmt.Errorf("invalid pull request number '%s'", matches[3])
	}

	return PullRequestLocation{
		Repository: core.RepositoryReference{Owner: matches[1], Name: matches[2]},
		Number:     number,
	}, nil
}
