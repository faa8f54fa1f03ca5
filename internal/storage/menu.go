package storage

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-maze/internal"
)

const menuRowLength = 80

// Selectable assets can be listed in a Menu.
type Selectable interface {
	ValidatingSpec
	Selector() string
}

// Menu is a numbered list of every asset in a store, laid out in columns and
// ordered by selector text.
type Menu[T Selectable] struct {
	options []option[T]
	rows    []string
}

type option[T Selectable] struct {
	id  Identifier
	val T
}

func NewMenu[T Selectable](st Storer[T]) *Menu[T] {
	m := &Menu[T]{}

	for id, val := range st.GetAll() {
		m.options = append(m.options, option[T]{id: id, val: val})
	}
	slices.SortFunc(m.options, func(a, b option[T]) int {
		if c := strings.Compare(a.val.Selector(), b.val.Selector()); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
	m.layout()

	return m
}

func (m *Menu[T]) layout() {
	colWidth := 1
	for _, o := range m.options {
		// "nn. " prefix plus two spaces between columns
		if l := len(o.val.Selector()) + 6; l > colWidth {
			colWidth = l
		}
	}

	numCols := max(menuRowLength/colWidth, 1)
	numRows := (len(m.options) + numCols - 1) / numCols

	m.rows = make([]string, numRows)
	for i, o := range m.options {
		r := i % numRows
		m.rows[r] += fmt.Sprintf("%2d. %-*s", i+1, colWidth-4, o.val.Selector())
	}
	for i := range m.rows {
		m.rows[i] = strings.TrimRight(m.rows[i], " ")
	}
}

// Len returns the number of options.
func (m *Menu[T]) Len() int {
	return len(m.options)
}

// Select returns the id of the i'th option counting from 1, or "" when i is
// out of range.
func (m *Menu[T]) Select(i int) Identifier {
	if i < 1 || i > len(m.options) {
		return ""
	}
	return m.options[i-1].id
}

// Render writes the menu rows to w.
func (m *Menu[T]) Render(w io.Writer) error {
	for _, row := range m.rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Prompt shows the menu and asks until a valid number is entered. A menu
// with a single option selects it without asking.
func (m *Menu[T]) Prompt(p *internal.Prompter, prompt string) (Identifier, error) {
	switch len(m.options) {
	case 0:
		return "", fmt.Errorf("nothing to select")
	case 1:
		return m.options[0].id, nil
	}

	if _, err := fmt.Fprintln(p, prompt); err != nil {
		return "", err
	}
	if err := m.Render(p); err != nil {
		return "", err
	}

	selection, err := p.Prompt("Make your selection: ", internal.WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(strings.TrimSpace(str))
			if err != nil || m.Select(i) == "" {
				return false, "Invalid selection!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return "", err
	}

	i, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil {
		return "", err
	}

	return m.Select(i), nil
}
