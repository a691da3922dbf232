package component

import (
	"fmt"
	"strings"
)

// ObjectTag classifies an actor for collision filtering and callbacks.
type ObjectTag uint8

const (
	TagStage ObjectTag = iota
	TagPlayer
	TagBossEnemy
	TagBossEnemyParts
	TagBoomerang
	TagBeam
	TagEffect

	tagCount
)

var tagNames = [...]string{
	TagStage:          "stage",
	TagPlayer:         "player",
	TagBossEnemy:      "boss_enemy",
	TagBossEnemyParts: "boss_enemy_parts",
	TagBoomerang:      "boomerang",
	TagBeam:           "beam",
	TagEffect:         "effect",
}

func (t ObjectTag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// ParseObjectTag accepts the lower snake case name of a tag.
func ParseObjectTag(s string) (ObjectTag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tagNames {
		if name == s {
			return ObjectTag(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown object tag %q", s)
}

// TagSet is a bit set of ObjectTags.
type TagSet uint32

func NewTagSet(tags ...ObjectTag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

func (s TagSet) With(t ObjectTag) TagSet { return s | 1<<t }

func (s TagSet) Has(t ObjectTag) bool { return s&(1<<t) != 0 }

// AllTags has every known tag set.
const AllTags = TagSet(1<<tagCount - 1)

type Actor struct {
	Tag  ObjectTag
	Name string
}

var ActorComponent = NewComponent[Actor]("actor")
