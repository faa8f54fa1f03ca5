package content

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/pixil98/go-maze/internal/game"
	"github.com/zyedidia/generic/mapset"
)

// DefaultWords are drawn from when a random puzzle is needed and the
// scenario supplies no words of its own.
var DefaultWords = []string{
	"arch", "back", "take", "bats", "bone", "bugs", "burn", "bite", "cane",
	"cast", "chop", "echo", "luck", "alive", "awful", "blind", "curse", "ivory",
}

// Builder wires rooms, doors and puzzles together. Every mechanism it makes
// is registered in the builder's registry.
type Builder struct {
	objects *game.Registry
	rng     *rand.Rand
	words   []string
}

func NewBuilder(objects *game.Registry, rng *rand.Rand, words []string) *Builder {
	if len(words) == 0 {
		words = DefaultWords
	}
	return &Builder{objects: objects, rng: rng, words: words}
}

// LinkRooms joins a to b with a pair of open doors, one in d and one back.
func (b *Builder) LinkRooms(a, c *game.Room, d game.Direction, name, description string) {
	b.LinkRoomsOneWay(a, c, d, name, description)
	b.LinkRoomsOneWay(c, a, d.Reverse(), name, description)
}

// LinkRoomsOneWay adds an open door from a to c in d only.
func (b *Builder) LinkRoomsOneWay(a, c *game.Room, d game.Direction, name, description string) {
	a.SetExit(d, game.NewDoor(name, description, c))
}

// LockRooms joins a to c with a pair of locked doors that share one key.
func (b *Builder) LockRooms(a, c *game.Room, d game.Direction, name, open, closed string, key game.Key) (*game.Door, *game.Door) {
	there := game.NewLockedDoor(name, open, closed, c, key)
	back := game.NewLockedDoor(name, open, closed, a, key)
	a.SetExit(d, there)
	c.SetExit(d.Reverse(), back)
	return there, back
}

// SequencePuzzle creates one mechanism per letter of word, each linked to
// the one before it. The last is a lock; the rest use the success message
// and the lock uses the final message.
func (b *Builder) SequencePuzzle(word string, text PuzzleText, trapped bool) ([]*game.Interactive, error) {
	if err := validateWord(word); err != nil {
		return nil, err
	}

	letters := []rune(strings.ToLower(word))
	mechanisms := make([]*game.Interactive, 0, len(letters))
	prev := game.NoPrevious
	for i, r := range letters {
		name := string(r)
		desc := fmt.Sprintf("%s with an accompanying plaque with the letter %s inscribed on it.", text.Mechanism, name)

		var m *game.Interactive
		var err error
		if i == len(letters)-1 {
			m, err = b.objects.NewLockMechanism(name, desc, text.Failure, text.Final, prev, trapped)
		} else {
			m, err = b.objects.NewMechanism(name, desc, text.Failure, text.Success, prev, trapped)
		}
		if err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", word, err)
		}

		mechanisms = append(mechanisms, m)
		prev = m.ObjectId()
	}

	return mechanisms, nil
}

// RandomSequencePuzzle creates a sequence puzzle from one of the builder's
// words.
func (b *Builder) RandomSequencePuzzle(text PuzzleText, trapped bool) ([]*game.Interactive, error) {
	return b.SequencePuzzle(b.words[b.rng.IntN(len(b.words))], text, trapped)
}

// AddPuzzle places a sequence puzzle in room and a locked door from room to
// target in d that only the finished puzzle opens. Unless oneWay is set the
// door back from target is locked by the same puzzle. An empty word picks a
// random one.
func (b *Builder) AddPuzzle(room, target *game.Room, d game.Direction, word string, text PuzzleText, trapped, oneWay bool) ([]*game.Interactive, error) {
	var mechanisms []*game.Interactive
	var err error
	if word == "" {
		mechanisms, err = b.RandomSequencePuzzle(text, trapped)
	} else {
		mechanisms, err = b.SequencePuzzle(word, text, trapped)
	}
	if err != nil {
		return nil, err
	}

	for _, m := range mechanisms {
		if room.Object(m.Name()) != nil {
			return nil, fmt.Errorf("mechanism %q clashes with another object in %s", m.Name(), room.Name())
		}
	}

	lock := mechanisms[len(mechanisms)-1]
	there := game.NewLockedDoor(text.Door, text.OpenDescription, text.ClosedDescription, target, lock)
	if err := lock.BindDoor(there); err != nil {
		return nil, err
	}
	room.SetExit(d, there)

	if !oneWay {
		back := game.NewLockedDoor(text.Door, text.OpenDescription, text.ClosedDescription, room, lock)
		if err := lock.BindDoor(back); err != nil {
			return nil, err
		}
		target.SetExit(d.Reverse(), back)
	}

	for _, m := range mechanisms {
		room.AddInteractive(m)
	}
	return mechanisms, nil
}

// validateWord checks a puzzle word can name one mechanism per letter.
func validateWord(word string) error {
	if word == "" {
		return fmt.Errorf("puzzle word must not be empty")
	}
	seen := mapset.New[rune]()
	for _, r := range strings.ToLower(word) {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("puzzle word %q must only contain letters", word)
		}
		if seen.Has(r) {
			return fmt.Errorf("puzzle word %q repeats the letter %q", word, r)
		}
		seen.Put(r)
	}
	return nil
}
