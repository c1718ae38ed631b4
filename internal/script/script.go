// Package script drives a singly.LinkedList[string] from a line oriented
// operation script, one operation per line.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/snwfog/singly.go/pkg/digest"
	"github.com/snwfog/singly.go/pkg/singly"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrArity     = errors.New("wrong number of arguments")
	ErrBadIndex  = errors.New("index is not an integer")
)

type List = singly.LinkedList[string]

type Line struct {
	No    int
	Op    string
	Index int
	Value string
}

func (l Line) String() string {
	s, o := l.Op, ops[l.Op]
	if o.index {
		s += " " + strconv.Itoa(l.Index)
	}
	if o.value {
		s += " " + l.Value
	}
	return s
}

type Script struct {
	Name  string
	Lines []Line
}

// region Operations
type op struct {
	index bool
	value bool
	exec  func(l *List, line Line) (string, error)
}

func (o op) arity() int {
	n := 0
	if o.index {
		n++
	}
	if o.value {
		n++
	}
	return n
}

var ops = map[string]op{
	"push_front": {value: true, exec: func(l *List, line Line) (string, error) {
		l.PushFront(line.Value)
		return l.String(), nil
	}},
	"push_back": {value: true, exec: func(l *List, line Line) (string, error) {
		l.PushBack(line.Value)
		return l.String(), nil
	}},
	"insert": {index: true, value: true, exec: func(l *List, line Line) (string, error) {
		if err := l.Insert(line.Index, line.Value); err != nil {
			return "", err
		}
		return l.String(), nil
	}},
	"erase": {index: true, exec: func(l *List, line Line) (string, error) {
		if err := l.Erase(line.Index); err != nil {
			return "", err
		}
		return l.String(), nil
	}},
	"pop_front": {exec: func(l *List, _ Line) (string, error) {
		return l.PopFront()
	}},
	"pop_back": {exec: func(l *List, _ Line) (string, error) {
		return l.PopBack()
	}},
	"at": {index: true, exec: func(l *List, line Line) (string, error) {
		return l.At(line.Index)
	}},
	"front": {exec: func(l *List, _ Line) (string, error) {
		return l.Front()
	}},
	"back": {exec: func(l *List, _ Line) (string, error) {
		return l.Back()
	}},
	"len": {exec: func(l *List, _ Line) (string, error) {
		return strconv.Itoa(l.Len()), nil
	}},
	"empty": {exec: func(l *List, _ Line) (string, error) {
		return strconv.FormatBool(l.IsEmpty()), nil
	}},
	"clear": {exec: func(l *List, _ Line) (string, error) {
		l.Clear()
		return l.String(), nil
	}},
	"print": {exec: func(l *List, _ Line) (string, error) {
		return l.String(), nil
	}},
	"digest": {exec: func(l *List, _ Line) (string, error) {
		return fmt.Sprintf("%016x", digest.Seq(l.All())), nil
	}},
}

// endregion

// region Parse

// Parse reads a script. Blank lines and anything after '#' are ignored.
func Parse(name string, r io.Reader) (*Script, error) {
	s := &Script{Name: name}

	scanner := bufio.NewScanner(r)
	for no := 1; scanner.Scan(); no++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		line, err := parseLine(no, fields)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, no)
		}
		s.Lines = append(s.Lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}

	return s, nil
}

func parseLine(no int, fields []string) (Line, error) {
	line := Line{No: no, Op: strings.ToLower(fields[0])}

	o, ok := ops[line.Op]
	if !ok {
		return line, errors.Wrap(ErrUnknownOp, fields[0])
	}

	args := fields[1:]
	if len(args) != o.arity() {
		return line, errors.Wrapf(ErrArity, "%s expects %d, got %d", line.Op, o.arity(), len(args))
	}

	if o.index {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return line, errors.Wrap(ErrBadIndex, args[0])
		}
		line.Index = index
		args = args[1:]
	}

	if o.value {
		line.Value = args[0]
	}

	return line, nil
}

// endregion
