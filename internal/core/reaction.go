package core

import "fmt"

// ReactionKind is the content of a GitHub reaction.
type ReactionKind string

const (
	ReactionThumbsUp   ReactionKind = "+1"
	ReactionThumbsDown ReactionKind = "-1"
	ReactionLaugh      ReactionKind = "laugh"
	ReactionConfused   ReactionKind = "confused"
	ReactionHeart      ReactionKind = "heart"
	ReactionHooray     ReactionKind = "hooray"
	ReactionRocket     ReactionKind = "rocket"
	ReactionEyes       ReactionKind = "eyes"
)

// Valid reports whether k is one of the reactions GitHub accepts.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionThumbsUp, ReactionThumbsDown, ReactionLaugh, ReactionConfused,
		ReactionHeart, ReactionHooray, ReactionRocket, ReactionEyes:
		return true
	}
	return false
}

// ParseReactionKind validates a reaction read from configuration.
func ParseReactionKind(s string) (ReactionKind, error) {
	k := ReactionKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("invalid reaction %q", s)
	}
	return k, nil
}
